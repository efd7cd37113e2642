package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClozeDeletion_DecodesMaskTuples(t *testing.T) {
	payload := `{"uuid":"cd-1","motif_uuid":"m-1","mask_tuples":[[0,2],[10,11]]}`

	var cd ClozeDeletion
	require.NoError(t, json.Unmarshal([]byte(payload), &cd))

	assert.Equal(t, "cd-1", cd.UUID)
	assert.Equal(t, "m-1", cd.MotifUUID)
	assert.Equal(t, IntervalSet{{Start: 0, End: 2}, {Start: 10, End: 11}}, cd.MaskTuples)
}

func TestClozeDeletion_EncodesEmptySetAsArray(t *testing.T) {
	data, err := json.Marshal(ClozeDeletion{UUID: "cd-1"})
	require.NoError(t, err)

	assert.JSONEq(t, `{"uuid":"cd-1","mask_tuples":[]}`, string(data))
}

func TestInterval_UnmarshalRejectsMalformedTuple(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"too short", `[[1]]`},
		{"too long", `[[1,2,3]]`},
		{"not numbers", `[["a","b"]]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var set IntervalSet
			assert.Error(t, json.Unmarshal([]byte(tt.payload), &set))
		})
	}
}

func TestMotif_LengthCountsRunes(t *testing.T) {
	m := Motif{Content: "naïve café"}

	assert.Equal(t, 10, m.Length())
}

func TestIntervalSet_CloneIsIndependent(t *testing.T) {
	original := IntervalSet{{Start: 1, End: 3}}
	clone := original.Clone()
	clone[0].End = 9

	assert.Equal(t, 3, original[0].End)
	assert.Equal(t, 3, original.Covered())
}
