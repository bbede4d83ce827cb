package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountJSONShape(t *testing.T) {
	a := Account{
		ID:          7,
		Name:        "Jane",
		Email:       "j@x.com",
		Address:     "1 Rd",
		PhoneNumber: "555-1",
		DateJoined:  Date{time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	b, err := json.Marshal(a)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"id":7,"name":"Jane","email":"j@x.com","address":"1 Rd","phone_number":"555-1","date_joined":"2024-01-01"}`,
		string(b))
}

func TestDateUnmarshal(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-01-01"`), &d))
	assert.Equal(t, "2024-01-01", d.String())

	assert.Error(t, json.Unmarshal([]byte(`"01/02/2024"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`20240101`), &d))
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-03-05", d.String())

	require.NoError(t, d.Scan("2024-03-06"))
	assert.Equal(t, "2024-03-06", d.String())

	assert.Error(t, d.Scan(42))
}

func TestToday(t *testing.T) {
	d := Today()
	assert.False(t, d.IsZero())
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), d.String())
}

func TestAccountInputValidate(t *testing.T) {
	valid := AccountInput{
		Name:        "Jane",
		Email:       "j@x.com",
		Address:     "1 Rd",
		PhoneNumber: "555-1",
	}
	assert.Empty(t, valid.Validate())

	tests := []struct {
		name string
		mut  func(*AccountInput)
		want string
	}{
		{"missing name", func(a *AccountInput) { a.Name = "" }, "name is required"},
		{"missing email", func(a *AccountInput) { a.Email = "" }, "email is required"},
		{"missing address", func(a *AccountInput) { a.Address = "" }, "address is required"},
		{"missing phone", func(a *AccountInput) { a.PhoneNumber = "" }, "phone_number is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid
			tt.mut(&input)
			assert.Equal(t, tt.want, input.Validate())
		})
	}
}
