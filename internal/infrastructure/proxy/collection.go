package proxy

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jhoicas/comandas-web/internal/domain"
	"github.com/jhoicas/comandas-web/internal/domain/entity"
	"github.com/jhoicas/comandas-web/internal/domain/repository"
)

// collection operaciones REST comunes a cliente/, funcionario/ y produto/.
//
//	GET    {prefix}all
//	GET    {prefix}one?{idParam}=<id>
//	POST   {prefix}
//	PUT    {prefix}          (id embebido en el cuerpo)
//	DELETE {prefix}?{idParam}=<id>
type collection struct {
	c       *Client
	prefix  string // "cliente/"
	idParam string // "id_cliente"
	label   string // usado en mensajes
}

func (col collection) list(ctx context.Context, out any) error {
	return col.c.do(ctx, http.MethodGet, col.prefix+"all", nil, nil, out)
}

// one decodifica en out (un slice) el resultado de {prefix}one. El backend responde un arreglo.
func (col collection) one(ctx context.Context, id entity.ID, out any) error {
	if id.Empty() {
		return fmt.Errorf("%w: %s", domain.ErrMissingID, col.label)
	}
	q := url.Values{col.idParam: {id.String()}}
	return col.c.do(ctx, http.MethodGet, col.prefix+"one", q, nil, out)
}

func (col collection) create(ctx context.Context, body any) (repository.SaveResult, error) {
	var out saveResponse
	if err := col.c.do(ctx, http.MethodPost, col.prefix, nil, body, &out); err != nil {
		return repository.SaveResult{}, err
	}
	return repository.SaveResult{ID: out.ID, Erro: out.Erro}, nil
}

func (col collection) update(ctx context.Context, id entity.ID, body any) (repository.SaveResult, error) {
	if id.Empty() {
		return repository.SaveResult{}, fmt.Errorf("%w: %s", domain.ErrMissingID, col.label)
	}
	var out saveResponse
	if err := col.c.do(ctx, http.MethodPut, col.prefix, nil, body, &out); err != nil {
		return repository.SaveResult{}, err
	}
	return repository.SaveResult{ID: out.ID, Erro: out.Erro}, nil
}

func (col collection) remove(ctx context.Context, id entity.ID) error {
	if id.Empty() {
		return fmt.Errorf("%w: %s", domain.ErrMissingID, col.label)
	}
	q := url.Values{col.idParam: {id.String()}}
	return col.c.do(ctx, http.MethodDelete, col.prefix, q, nil, nil)
}

// find consulta de existencia: GET {prefix}{path}?{param}=<value>; el backend responde un arreglo.
func (col collection) find(ctx context.Context, path, param, value string, out any) error {
	if value == "" {
		return fmt.Errorf("%w: %s é obrigatório para verificação", domain.ErrInvalidInput, param)
	}
	q := url.Values{param: {value}}
	return col.c.do(ctx, http.MethodGet, col.prefix+path, q, nil, out)
}
