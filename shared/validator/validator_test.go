package validator_test

import (
	"strings"
	"testing"
	"todoapp/shared/failure"
	"todoapp/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type todoForm struct {
	Title  string `form:"title" json:"title" validate:"notblank,max=10"`
	Status string `json:"status" validate:"omitempty,oneof=open done"`
	Note   string `json:"-" validate:"omitempty,min=3"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name       string
		data       todoForm
		wantFields map[string]string
	}{
		{
			name: "valid",
			data: todoForm{Title: "Buy milk", Status: "open"},
		},
		{
			name:       "blank title",
			data:       todoForm{Title: "   "},
			wantFields: map[string]string{"title": "title is required"},
		},
		{
			name:       "title too long",
			data:       todoForm{Title: strings.Repeat("a", 11)},
			wantFields: map[string]string{"title": "title must be at most 10 characters"},
		},
		{
			name: "multiple fields",
			data: todoForm{Title: "", Status: "later"},
			wantFields: map[string]string{
				"title":  "title is required",
				"status": "status must be one of open done",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.wantFields == nil {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.True(t, failure.IsBadRequest(err))
			assert.Equal(t, tt.wantFields, failure.GetFields(err))
		})
	}
}

func TestValidate(t *testing.T) {
	var data todoForm

	err := validator.Validate(strings.NewReader(`{"title":"Buy milk"}`), &data)
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", data.Title)

	err = validator.Validate(strings.NewReader(`{"title":`), &data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode request body")

	err = validator.Validate(strings.NewReader(`{"title":""}`), &data)
	require.Error(t, err)
	assert.Equal(t, "title is required", err.Error())
}

func TestDecode(t *testing.T) {
	form := todoForm{}

	require.NoError(t, validator.Decode(strings.NewReader(`{"title":"   "}`), &form))
	assert.Equal(t, "   ", form.Title)

	err := validator.Decode(strings.NewReader(`{"title":`), &form)
	require.Error(t, err)
	assert.True(t, failure.IsBadRequest(err))
}
