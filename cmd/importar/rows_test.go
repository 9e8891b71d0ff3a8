package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/comandas-web/internal/application/dto"
)

func TestReadRows_UTF8ConBOM(t *testing.T) {
	in := "\ufeffNome;CPF;Telefone\nAna;123.456.789-01;(11) 98765-4321\n;;\nBia;10987654321;\n"
	rows, err := readRows(strings.NewReader(in), "utf8", ';')
	require.NoError(t, err)
	require.Len(t, rows, 2, "las filas vacías se ignoran")
	assert.Equal(t, "Ana", rows[0].get("nome"))
	assert.Equal(t, "123.456.789-01", rows[0].get("cpf"))
	assert.Equal(t, "", rows[1].get("telefone"))
}

func TestReadRows_Windows1252(t *testing.T) {
	enc, err := charmap.Windows1252.NewEncoder().String("nome;descrição;valor\nPão de Queijo;Açúcar;R$ 5,50\n")
	require.NoError(t, err)
	rows, err := readRows(bytes.NewReader([]byte(enc)), "win1252", ';')
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Pão de Queijo", rows[0].get("nome"))
	assert.Equal(t, "Açúcar", rows[0].get("descricao", "descrição"))
	assert.Equal(t, "R$ 5,50", rows[0].get("valor_unitario", "valor"))
}

func TestReadRows_EncodingDesconocido(t *testing.T) {
	_, err := readRows(strings.NewReader("a\n"), "ebcdic", ';')
	assert.Error(t, err)
}

func TestRun_CuentaResultados(t *testing.T) {
	rows := []row{{"nome": "a"}, {"nome": "b"}, {"nome": "c"}}
	save := func(_ context.Context, r row) (*dto.SubmitResponse, error) {
		switch r.get("nome") {
		case "a":
			return &dto.SubmitResponse{State: dto.SubmitSuccess, ID: "1"}, nil
		case "b":
			return &dto.SubmitResponse{State: dto.SubmitConflict, Conflict: &dto.ConflictPrompt{Message: "duplicado"}}, nil
		default:
			return &dto.SubmitResponse{State: dto.SubmitError, Message: "Erro ao salvar."}, errors.New("backend")
		}
	}
	sum := run(context.Background(), rows, save)
	assert.Equal(t, 1, sum.Created)
	assert.Equal(t, 1, sum.Conflicts)
	assert.Equal(t, 1, sum.Errors)
	require.Len(t, sum.Failures, 2)
	assert.Equal(t, "línea 3: duplicado", sum.Failures[0])
	assert.Contains(t, sum.Failures[1], "línea 4: Erro ao salvar.")
}
