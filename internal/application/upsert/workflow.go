// Package upsert implementa el flujo de alta/edición protegido contra duplicados que comparten
// los formularios de Cliente, Funcionario y Produto:
//
//	verificar clave → ¿conflicto? → crear/actualizar → exigir id → redirigir al listado
//
// La verificación de existencia falla cerrado: si el backend no responde, el envío se bloquea
// como si hubiera conflicto, para no crear duplicados durante caídas del backend.
package upsert

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/jhoicas/comandas-web/internal/domain/entity"
	"github.com/jhoicas/comandas-web/internal/domain/repository"
)

// ErrMissingResponseID el backend respondió sin id: la operación no se considera realizada.
var ErrMissingResponseID = errors.New("nenhuma resposta válida da API")

// MissingIDError respuesta 2xx sin id. Erro es el mensaje que mandó el backend, si mandó alguno.
type MissingIDError struct {
	Erro string
}

func (e *MissingIDError) Error() string {
	if e.Erro == "" {
		return ErrMissingResponseID.Error()
	}
	return ErrMissingResponseID.Error() + ": " + e.Erro
}

// Unwrap permite errors.Is(err, ErrMissingResponseID).
func (e *MissingIDError) Unwrap() error { return ErrMissingResponseID }

// Gateway operaciones de una entidad que necesita el workflow. T suele ser un puntero a entidad.
type Gateway[T any] interface {
	// Key clave de unicidad ya normalizada del formulario (cpf, nome).
	Key(form T) string
	CheckExists(ctx context.Context, key string) ([]T, error)
	IDOf(rec T) entity.ID
	Create(ctx context.Context, form T) (repository.SaveResult, error)
	Update(ctx context.Context, id entity.ID, form T) (repository.SaveResult, error)
}

// Routes rutas de navegación de la entidad en el frontend.
type Routes struct {
	List   string // "/clientes"
	Entity string // "/cliente"
}

// View ruta de visualización del registro.
func (r Routes) View(id entity.ID) string { return r.Entity + "/view/" + id.String() }

// Edit ruta de edición del registro.
func (r Routes) Edit(id entity.ID) string { return r.Entity + "/edit/" + id.String() }

// Prompt decisión que se ofrece ante un conflicto: ver o editar el registro existente
// (ambas abandonan el formulario actual) o cancelar.
// Si la verificación falló, Found es false y CheckErr trae la causa.
type Prompt[T any] struct {
	Found    bool
	Record   T
	View     string
	Edit     string
	CheckErr error
}

// Outcome resultado de Submit. Form siempre devuelve el formulario enviado para conservar su estado.
type Outcome[T any] struct {
	State    State
	ID       entity.ID
	Redirect string
	Conflict *Prompt[T]
	Err      error
	Form     T
	Trail    []State
}

// Workflow flujo de envío protegido contra duplicados para una entidad.
type Workflow[T any] struct {
	gw     Gateway[T]
	routes Routes
	log    zerolog.Logger
}

// New construye el workflow.
func New[T any](gw Gateway[T], routes Routes, log zerolog.Logger) *Workflow[T] {
	return &Workflow[T]{gw: gw, routes: routes, log: log}
}

// Routes rutas configuradas.
func (w *Workflow[T]) Routes() Routes { return w.routes }

// Check verifica la clave contra el backend. Devuelve nil si no hay conflicto.
// Hay conflicto si existe un registro con la clave y no es el que se está editando
// (existingID vacío = alta). Un error en la verificación también cuenta como conflicto.
func (w *Workflow[T]) Check(ctx context.Context, key string, existingID entity.ID) *Prompt[T] {
	found, err := w.gw.CheckExists(ctx, key)
	if err != nil {
		w.log.Error().Err(err).Str("key", key).Msg("verificación de existencia falló; se bloquea el envío")
		return &Prompt[T]{CheckErr: err}
	}
	if len(found) == 0 {
		return nil
	}
	rec := found[0]
	id := w.gw.IDOf(rec)
	if !existingID.Empty() && id.Equal(existingID) {
		return nil // editando el mismo registro
	}
	return &Prompt[T]{
		Found:  true,
		Record: rec,
		View:   w.routes.View(id),
		Edit:   w.routes.Edit(id),
	}
}

// Submit ejecuta el flujo completo. El formulario debe llegar normalizado y validado.
// Sin existingID crea; con existingID actualiza ese registro.
func (w *Workflow[T]) Submit(ctx context.Context, form T, existingID entity.ID) Outcome[T] {
	a := NewAttempt()
	a.mustAdvance(StateChecking)

	if p := w.Check(ctx, w.gw.Key(form), existingID); p != nil {
		a.mustAdvance(StateConflict)
		return Outcome[T]{State: StateConflict, Conflict: p, Form: form, Trail: a.Trail()}
	}

	a.mustAdvance(StateSubmitting)
	var (
		res repository.SaveResult
		err error
	)
	if existingID.Empty() {
		res, err = w.gw.Create(ctx, form)
	} else {
		res, err = w.gw.Update(ctx, existingID, form)
	}
	if err == nil && res.ID.Empty() {
		err = &MissingIDError{Erro: res.Erro}
	}
	if err != nil {
		a.mustAdvance(StateError)
		w.log.Error().Err(err).Str("id", existingID.String()).Msg("erro ao salvar")
		out := Outcome[T]{State: StateError, Err: err, Form: form}
		a.mustAdvance(StateIdle)
		out.Trail = a.Trail()
		return out
	}

	a.mustAdvance(StateSuccess)
	return Outcome[T]{
		State:    StateSuccess,
		ID:       res.ID,
		Redirect: w.routes.List,
		Form:     form,
		Trail:    a.Trail(),
	}
}
