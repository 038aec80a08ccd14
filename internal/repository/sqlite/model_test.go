package sqlite

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRecord_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected UserRecord
	}{
		{
			name:  "Well formed",
			input: `{"name":"Ann","password":"secret1","tasks":[{"id":"t1","title":"Buy milk","desc":"2%","dueDate":"2025-01-02","priority":"low","completed":true,"createdAt":"2025-01-01T00:00:00.000Z"}]}`,
			expected: UserRecord{
				Name:     "Ann",
				Password: "secret1",
				Tasks: []TaskRecord{{
					ID: "t1", Title: "Buy milk", Description: "2%", DueDate: "2025-01-02",
					Priority: "low", Completed: true, CreatedAt: "2025-01-01T00:00:00.000Z",
				}},
			},
		},
		{
			name:     "Numeric password and name",
			input:    `{"name":42,"password":123456}`,
			expected: UserRecord{Password: "123456", Tasks: []TaskRecord{}},
		},
		{
			name:     "Tasks not an array",
			input:    `{"name":"Ann","password":"p","tasks":"none"}`,
			expected: UserRecord{Name: "Ann", Password: "p", Tasks: []TaskRecord{}},
		},
		{
			name:     "Malformed task entries skipped",
			input:    `{"tasks":[7,{"id":"t2","title":"Keep"}]}`,
			expected: UserRecord{Tasks: []TaskRecord{{ID: "t2", Title: "Keep"}}},
		},
		{
			name:     "Null fields",
			input:    `{"name":null,"password":null,"tasks":null}`,
			expected: UserRecord{Tasks: []TaskRecord{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var record UserRecord
			require.NoError(t, json.Unmarshal([]byte(tt.input), &record))
			assert.Equal(t, tt.expected, record)
		})
	}
}

func TestUserRecord_UnmarshalJSON_NotObject(t *testing.T) {
	var record UserRecord
	assert.Error(t, json.Unmarshal([]byte(`"just a string"`), &record))
}
