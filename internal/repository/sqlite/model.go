package sqlite

import (
	"encoding/json"
	"strconv"
	"time"
)

// Item is one row of the key/value storage table.
type Item struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// TaskRecord is a task as it appears inside the serialized users blob.
type TaskRecord struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"desc"`
	DueDate     string `json:"dueDate"`
	Priority    string `json:"priority"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"createdAt"`
}

// UserRecord is an account entry inside the users blob.
type UserRecord struct {
	Name     string       `json:"name"`
	Password string       `json:"password"`
	Tasks    []TaskRecord `json:"tasks"`
}

// UsersBlob maps email to user record, exactly as stored under the users key.
type UsersBlob map[string]UserRecord

// UnmarshalJSON tolerates hand-edited records: non-string names are dropped,
// scalar passwords are stringified and a non-array tasks value becomes empty.
func (u *UserRecord) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name     json.RawMessage `json:"name"`
		Password json.RawMessage `json:"password"`
		Tasks    json.RawMessage `json:"tasks"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*u = UserRecord{Tasks: []TaskRecord{}}

	if len(raw.Name) > 0 {
		var name string
		if json.Unmarshal(raw.Name, &name) == nil {
			u.Name = name
		}
	}

	u.Password = scalarString(raw.Password)

	if len(raw.Tasks) > 0 {
		var items []json.RawMessage
		if json.Unmarshal(raw.Tasks, &items) == nil {
			for _, item := range items {
				var task TaskRecord
				if json.Unmarshal(item, &task) == nil {
					u.Tasks = append(u.Tasks, task)
				}
			}
		}
	}

	return nil
}

func scalarString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return s
	}
	var n json.Number
	if json.Unmarshal(raw, &n) == nil {
		return n.String()
	}
	var b bool
	if json.Unmarshal(raw, &b) == nil {
		return strconv.FormatBool(b)
	}
	return ""
}
