package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Count    int    `validate:"gte=1"`
}

func TestStruct_Valid(t *testing.T) {
	assert.NoError(t, Struct(sample{Email: "a@b.com", Password: "longenough", Count: 1}))
}

func TestStruct_ReportsJSONNames(t *testing.T) {
	err := Struct(sample{Email: "nope", Password: "short"})
	assert.EqualError(t, err, "field 'email' failed 'email'; field 'password' failed 'min'; field 'Count' failed 'gte'")
}
