package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexInt(t *testing.T) {
	tests := []struct {
		in      string
		want    *int
		wantErr bool
	}{
		{`4`, intPtr(4), false},
		{`"5"`, intPtr(5), false},
		{`" 3 "`, intPtr(3), false},
		{`2.0`, intPtr(2), false},
		{`null`, nil, false},
		{`""`, nil, false},
		{`"abc"`, nil, true},
		{`2.5`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var f FlexInt
			err := json.Unmarshal([]byte(tt.in), &f)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.Ptr())
		})
	}
}

func TestFlexBool(t *testing.T) {
	for in, want := range map[string]bool{
		`true`: true, `false`: false, `"si"`: true, `"Sí"`: true,
		`"1"`: true, `"0"`: false, `"no"`: false, `1`: true,
	} {
		var f FlexBool
		require.NoError(t, json.Unmarshal([]byte(in), &f), in)
		assert.True(t, f.Set, in)
		assert.Equal(t, want, f.Value, in)
	}

	var f FlexBool
	require.NoError(t, json.Unmarshal([]byte(`null`), &f))
	assert.Nil(t, f.Ptr())
	assert.Error(t, json.Unmarshal([]byte(`"quizá"`), &f))
}

func TestFlexIDs(t *testing.T) {
	var body struct {
		Products FlexIDs `json:"productos"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"productos": [1, "2", 0, null]}`), &body))
	assert.Equal(t, FlexIDs{1, 2}, body.Products)
}

func intPtr(v int) *int { return &v }
