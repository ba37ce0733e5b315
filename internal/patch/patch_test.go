package patch

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Name  string
	Score int
}

type request struct {
	Name  *string
	Score *int
}

var errNegative = errors.New("negative score")

var fields = Set[request, record]{
	{
		Name:    "name",
		Present: func(r *request) bool { return r.Name != nil },
		Apply: func(r *request, rec *record) error {
			rec.Name = *r.Name
			return nil
		},
	},
	{
		Name:    "score",
		Present: func(r *request) bool { return r.Score != nil },
		Apply: func(r *request, rec *record) error {
			if *r.Score < 0 {
				return errNegative
			}
			rec.Score = *r.Score
			return nil
		},
	},
}

func TestApply_OnlyPresentFields(t *testing.T) {
	name := "after"
	rec := record{Name: "before", Score: 3}

	require.NoError(t, fields.Apply(&request{Name: &name}, &rec))
	assert.Equal(t, record{Name: "after", Score: 3}, rec)
}

func TestApply_Empty(t *testing.T) {
	rec := record{Name: "same"}
	err := fields.Apply(&request{}, &rec)
	assert.ErrorIs(t, err, ErrNoFields)
	assert.Equal(t, "same", rec.Name)
}

func TestApply_Rejection(t *testing.T) {
	score := -1
	rec := record{}
	err := fields.Apply(&request{Score: &score}, &rec)
	assert.ErrorIs(t, err, errNegative)
	assert.Contains(t, err.Error(), "score")
}

func TestRequested(t *testing.T) {
	name, score := "x", 1
	assert.Equal(t, []string{"name", "score"}, fields.Requested(&request{Name: &name, Score: &score}))
	assert.Empty(t, fields.Requested(&request{}))
}
