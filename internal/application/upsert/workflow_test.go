package upsert_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/comandas-web/internal/application/upsert"
	"github.com/jhoicas/comandas-web/internal/domain/entity"
	"github.com/jhoicas/comandas-web/internal/domain/repository"
)

// fakeGateway registra las llamadas y responde lo configurado.
type fakeGateway struct {
	existing []*entity.Cliente
	checkErr error
	saveRes  repository.SaveResult
	saveErr  error
	checked  []string
	created  []*entity.Cliente
	updated  []entity.ID
}

func (g *fakeGateway) Key(c *entity.Cliente) string { return c.CPF }

func (g *fakeGateway) CheckExists(_ context.Context, key string) ([]*entity.Cliente, error) {
	g.checked = append(g.checked, key)
	return g.existing, g.checkErr
}

func (g *fakeGateway) IDOf(c *entity.Cliente) entity.ID { return c.ID }

func (g *fakeGateway) Create(_ context.Context, c *entity.Cliente) (repository.SaveResult, error) {
	g.created = append(g.created, c)
	return g.saveRes, g.saveErr
}

func (g *fakeGateway) Update(_ context.Context, id entity.ID, _ *entity.Cliente) (repository.SaveResult, error) {
	g.updated = append(g.updated, id)
	return g.saveRes, g.saveErr
}

var routes = upsert.Routes{List: "/clientes", Entity: "/cliente"}

func newWorkflow(g *fakeGateway) *upsert.Workflow[*entity.Cliente] {
	return upsert.New[*entity.Cliente](g, routes, zerolog.Nop())
}

// ─── Alta ─────────────────────────────────────────────────────────────────────

func TestSubmit_AltaSinConflictoRedirigeAlListado(t *testing.T) {
	g := &fakeGateway{saveRes: repository.SaveResult{ID: "5"}}
	form := &entity.Cliente{Nome: "Maria", CPF: "12345678901"}

	out := newWorkflow(g).Submit(context.Background(), form, "")

	require.Equal(t, upsert.StateSuccess, out.State)
	assert.Equal(t, entity.ID("5"), out.ID)
	assert.Equal(t, "/clientes", out.Redirect)
	assert.Equal(t, []string{"12345678901"}, g.checked)
	assert.Len(t, g.created, 1)
	assert.Empty(t, g.updated)
	assert.Equal(t, []upsert.State{upsert.StateIdle, upsert.StateChecking, upsert.StateSubmitting, upsert.StateSuccess}, out.Trail)
}

func TestSubmit_AltaConConflictoNoEnvia(t *testing.T) {
	g := &fakeGateway{existing: []*entity.Cliente{{ID: "9", Nome: "Outro", CPF: "12345678901"}}}

	out := newWorkflow(g).Submit(context.Background(), &entity.Cliente{CPF: "12345678901"}, "")

	require.Equal(t, upsert.StateConflict, out.State)
	require.NotNil(t, out.Conflict)
	assert.True(t, out.Conflict.Found)
	assert.Equal(t, entity.ID("9"), out.Conflict.Record.ID)
	assert.Equal(t, "/cliente/view/9", out.Conflict.View)
	assert.Equal(t, "/cliente/edit/9", out.Conflict.Edit)
	assert.Empty(t, g.created, "en conflicto no se crea")
	assert.Empty(t, out.Redirect)
}

// ─── Edición ──────────────────────────────────────────────────────────────────

func TestSubmit_EdicionDelMismoRegistroProcede(t *testing.T) {
	g := &fakeGateway{
		existing: []*entity.Cliente{{ID: "7", CPF: "12345678901"}},
		saveRes:  repository.SaveResult{ID: "7"},
	}

	out := newWorkflow(g).Submit(context.Background(), &entity.Cliente{CPF: "12345678901"}, "7")

	require.Equal(t, upsert.StateSuccess, out.State)
	assert.Equal(t, []entity.ID{"7"}, g.updated)
	assert.Empty(t, g.created)
}

func TestSubmit_EdicionChocaConOtroRegistro(t *testing.T) {
	g := &fakeGateway{existing: []*entity.Cliente{{ID: "9", CPF: "12345678901"}}}

	out := newWorkflow(g).Submit(context.Background(), &entity.Cliente{CPF: "12345678901"}, "7")

	require.Equal(t, upsert.StateConflict, out.State)
	assert.Equal(t, "/cliente/view/9", out.Conflict.View)
	assert.Empty(t, g.updated)
}

// ─── Fallos ───────────────────────────────────────────────────────────────────

func TestSubmit_VerificacionFallidaBloquea(t *testing.T) {
	g := &fakeGateway{checkErr: errors.New("timeout")}

	out := newWorkflow(g).Submit(context.Background(), &entity.Cliente{CPF: "12345678901"}, "")

	require.Equal(t, upsert.StateConflict, out.State)
	require.NotNil(t, out.Conflict)
	assert.False(t, out.Conflict.Found)
	assert.Error(t, out.Conflict.CheckErr)
	assert.Empty(t, g.created, "sin verificación no se envía")
}

func TestSubmit_RespuestaSinIDEsError(t *testing.T) {
	g := &fakeGateway{saveRes: repository.SaveResult{Erro: "CPF duplicado"}}
	form := &entity.Cliente{Nome: "Maria", CPF: "12345678901"}

	out := newWorkflow(g).Submit(context.Background(), form, "")

	require.Equal(t, upsert.StateError, out.State)
	assert.ErrorIs(t, out.Err, upsert.ErrMissingResponseID)
	assert.Contains(t, out.Err.Error(), "CPF duplicado")
	assert.Same(t, form, out.Form, "el formulario se conserva")
	assert.Empty(t, out.Redirect)
	assert.Equal(t, upsert.StateIdle, out.Trail[len(out.Trail)-1], "tras el error el intento vuelve a idle")
}

func TestSubmit_ErrorDeTransporte(t *testing.T) {
	g := &fakeGateway{saveErr: errors.New("connection refused")}

	out := newWorkflow(g).Submit(context.Background(), &entity.Cliente{CPF: "12345678901"}, "3")

	require.Equal(t, upsert.StateError, out.State)
	assert.EqualError(t, out.Err, "connection refused")
}

// ─── Check y máquina de estados ───────────────────────────────────────────────

func TestCheck_SinRegistrosNoHayConflicto(t *testing.T) {
	assert.Nil(t, newWorkflow(&fakeGateway{}).Check(context.Background(), "12345678901", ""))
}

func TestAttempt_TransicionesIlegales(t *testing.T) {
	a := upsert.NewAttempt()
	assert.ErrorIs(t, a.Advance(upsert.StateSubmitting), upsert.ErrIllegalTransition, "no se envía sin verificar")

	require.NoError(t, a.Advance(upsert.StateChecking))
	require.NoError(t, a.Advance(upsert.StateConflict))
	assert.ErrorIs(t, a.Advance(upsert.StateSubmitting), upsert.ErrIllegalTransition, "conflicto es terminal")
	assert.Equal(t, upsert.StateConflict, a.State())
}

func TestAttempt_ErrorVuelveAIdle(t *testing.T) {
	a := upsert.NewAttempt()
	for _, s := range []upsert.State{upsert.StateChecking, upsert.StateSubmitting, upsert.StateError, upsert.StateIdle, upsert.StateChecking} {
		require.NoError(t, a.Advance(s), "hacia %s", s)
	}
	assert.Len(t, a.Trail(), 6)
}
