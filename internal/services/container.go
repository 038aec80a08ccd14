package services

import (
	"task-manager/internal/config"
	"task-manager/internal/repository/sqlite"
	"task-manager/internal/validation"
)

// NewServiceContainer wires every service against one repository. cfg may be
// nil, in which case built-in defaults apply.
func NewServiceContainer(repo sqlite.Repository, cfg *config.Config) *ServiceContainer {
	return NewServiceContainerWithOptions(repo, cfg, nil, nil)
}

// NewServiceContainerWithOptions is NewServiceContainer with an injectable
// time service and id generator. Nil values take the defaults.
func NewServiceContainerWithOptions(repo sqlite.Repository, cfg *config.Config, timeService TimeService, ids IDGenerator) *ServiceContainer {
	validator := validation.NewValidator()
	dateFormat := ""
	if cfg != nil {
		validator = validation.NewValidatorWithConfig(cfg)
		dateFormat = cfg.Display.DateFormat
	}
	if timeService == nil {
		timeService = NewTimeService(dateFormat)
	}

	return &ServiceContainer{
		TimeService:      timeService,
		AccountService:   NewAccountService(repo, validator),
		SearchService:    NewSearchService(),
		ReportingService: NewReportingService(),
		TasksFor: func(session Session) TaskService {
			return NewTaskService(repo, session, timeService, validator, ids)
		},
	}
}
