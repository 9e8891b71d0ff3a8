package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/comandas-web/internal/application/dto"
	"github.com/jhoicas/comandas-web/internal/application/usecase"
)

// row una fila del CSV indexada por el encabezado (en minúsculas).
type row map[string]string

func (r row) get(keys ...string) string {
	for _, k := range keys {
		if v, ok := r[k]; ok {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// readRows decodifica el CSV. La primera fila es el encabezado.
func readRows(in io.Reader, encoding string, sep rune) ([]row, error) {
	switch strings.ToLower(encoding) {
	case "", "utf8", "utf-8":
	case "win1252", "windows-1252", "cp1252":
		in = transform.NewReader(in, charmap.Windows1252.NewDecoder())
	case "latin1", "iso-8859-1":
		in = transform.NewReader(in, charmap.ISO8859_1.NewDecoder())
	default:
		return nil, fmt.Errorf("encoding desconocido %q", encoding)
	}
	r := csv.NewReader(in)
	r.Comma = sep
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("encabezado: %w", err)
	}
	for i, h := range header {
		header[i] = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
	}

	var out []row
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if blank(rec) {
			continue
		}
		m := make(row, len(header))
		for i, h := range header {
			if i < len(rec) {
				m[h] = rec[i]
			}
		}
		out = append(out, m)
	}
	return out, nil
}

func blank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// saveFunc da de alta una fila.
type saveFunc func(ctx context.Context, r row) (*dto.SubmitResponse, error)

func clienteSaver(uc *usecase.ClienteUseCase) saveFunc {
	return func(ctx context.Context, r row) (*dto.SubmitResponse, error) {
		return uc.Save(ctx, dto.ClienteRequest{
			Nome:     r.get("nome"),
			CPF:      r.get("cpf"),
			Telefone: r.get("telefone"),
		}, "")
	}
}

func funcionarioSaver(uc *usecase.FuncionarioUseCase) saveFunc {
	return func(ctx context.Context, r row) (*dto.SubmitResponse, error) {
		var grupo int
		if g := r.get("grupo"); g != "" {
			n, err := strconv.Atoi(g)
			if err != nil {
				return nil, fmt.Errorf("grupo inválido %q", g)
			}
			grupo = n
		}
		return uc.Save(ctx, dto.FuncionarioRequest{
			Nome:      r.get("nome"),
			CPF:       r.get("cpf"),
			Matricula: r.get("matricula"),
			Telefone:  r.get("telefone"),
			Senha:     r.get("senha"),
			Grupo:     grupo,
		}, "")
	}
}

func produtoSaver(uc *usecase.ProdutoUseCase) saveFunc {
	return func(ctx context.Context, r row) (*dto.SubmitResponse, error) {
		return uc.Save(ctx, dto.ProdutoRequest{
			Nome:          r.get("nome"),
			Descricao:     r.get("descricao", "descrição"),
			ValorUnitario: dto.Money(r.get("valor_unitario", "valor", "preco", "preço")),
			Foto:          r.get("foto"),
		}, "")
	}
}

// summary conteo de la importación.
type summary struct {
	Created   int
	Conflicts int
	Errors    int
	Failures  []string
}

// run procesa las filas en orden. Los duplicados no se sobrescriben.
func run(ctx context.Context, rows []row, save saveFunc) summary {
	var sum summary
	for i, r := range rows {
		line := i + 2 // encabezado = línea 1
		resp, err := save(ctx, r)
		switch {
		case err != nil:
			sum.Errors++
			msg := err.Error()
			if resp != nil && resp.Message != "" {
				msg = resp.Message + " (" + msg + ")"
			}
			sum.Failures = append(sum.Failures, fmt.Sprintf("línea %d: %s", line, msg))
		case resp.State == dto.SubmitConflict:
			sum.Conflicts++
			sum.Failures = append(sum.Failures, fmt.Sprintf("línea %d: %s", line, resp.Conflict.Message))
		default:
			sum.Created++
		}
		if ctx.Err() != nil {
			sum.Failures = append(sum.Failures, fmt.Sprintf("línea %d: %v", line, ctx.Err()))
			break
		}
	}
	return sum
}
