package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/comandas-web/internal/domain/entity"
)

func TestID_MarshalJSON(t *testing.T) {
	cases := map[entity.ID]string{
		"7":   `7`,
		"-3":  `-3`,
		"07":  `"07"`,
		"+7":  `"+7"`,
		" 7":  `" 7"`,
		"abc": `"abc"`,
		"1e3": `"1e3"`,
		"":    `null`,
	}
	for id, want := range cases {
		b, err := json.Marshal(id)
		require.NoError(t, err, "id %q", id)
		assert.JSONEq(t, want, string(b), "id %q", id)
	}
}

func TestID_EnCuerpoDeActualizacion(t *testing.T) {
	b, err := json.Marshal(struct {
		ID entity.ID `json:"id_cliente"`
	}{ID: "07"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id_cliente":"07"}`, string(b))
}

func TestID_UnmarshalJSON(t *testing.T) {
	var v struct {
		A entity.ID `json:"a"`
		B entity.ID `json:"b"`
		C entity.ID `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":12,"b":"x9","c":null}`), &v))
	assert.Equal(t, entity.ID("12"), v.A)
	assert.Equal(t, entity.ID("x9"), v.B)
	assert.True(t, v.C.Empty())
}
