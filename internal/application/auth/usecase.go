package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/comandas-web/internal/application/dto"
	"github.com/jhoicas/comandas-web/internal/domain"
	"github.com/jhoicas/comandas-web/internal/domain/entity"
	"github.com/jhoicas/comandas-web/internal/domain/repository"
	"github.com/jhoicas/comandas-web/pkg/jwt"
)

// Errores de login.
var (
	ErrInvalidCredentials = fmt.Errorf("%w: usuário ou senha inválidos", domain.ErrUnauthorized)
	ErrMissingGrupo       = fmt.Errorf("%w: grupo do usuário não encontrado", domain.ErrUnauthorized)
	ErrTokenExpired       = fmt.Errorf("%w: token do servidor expirado", domain.ErrUnauthorized)
)

// AuthUseCase login de administradores: credencial local ("@usuario") o funcionario/login del backend.
type AuthUseCase struct {
	gateway repository.LoginGateway
	local   *LocalCredential
	log     zerolog.Logger
	now     func() time.Time
}

// NewAuthUseCase construye el caso de uso. local puede ser nil.
func NewAuthUseCase(gateway repository.LoginGateway, local *LocalCredential, log zerolog.Logger) *AuthUseCase {
	return &AuthUseCase{gateway: gateway, local: local, log: log, now: time.Now}
}

// Login valida las credenciales y devuelve la sesión. Solo el grupo Admin pasa.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*Session, error) {
	usuario := strings.TrimSpace(in.Usuario)
	verr := domain.NewValidationError()
	if usuario == "" {
		verr.Add("usuario", "Usuário é obrigatório")
	}
	if in.Senha == "" {
		verr.Add("senha", "Senha é obrigatória")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	if strings.HasPrefix(usuario, "@") {
		return uc.loginLocal(strings.TrimPrefix(usuario, "@"), in.Senha)
	}
	return uc.loginBackend(ctx, usuario, in.Senha)
}

func (uc *AuthUseCase) loginLocal(username, senha string) (*Session, error) {
	if !uc.local.Verify(username, senha) {
		uc.log.Warn().Str("usuario", "@"+username).Msg("login local rechazado")
		return nil, ErrInvalidCredentials
	}
	return &Session{Authenticated: true, Usuario: username, Grupo: entity.GrupoAdmin}, nil
}

func (uc *AuthUseCase) loginBackend(ctx context.Context, login, senha string) (*Session, error) {
	res, err := uc.gateway.Login(ctx, login, senha)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if res.Grupo == 0 {
		return nil, ErrMissingGrupo
	}
	if res.Grupo != entity.GrupoAdmin {
		uc.log.Warn().Int("grupo", int(res.Grupo)).Msg("login sin permiso de administrador")
		return nil, domain.ErrForbidden
	}

	s := &Session{
		Authenticated: true,
		Usuario:       firstNonEmpty(res.Usuario, res.Nome, login),
		Grupo:         res.Grupo,
		Token:         res.Token,
	}
	if res.Token != "" {
		info, err := jwt.Inspect(res.Token)
		switch {
		case err != nil:
			uc.log.Debug().Err(err).Msg("token del backend no es JWT; la sesión solo vence por inactividad")
		case info.Expired(uc.now()):
			return nil, ErrTokenExpired
		default:
			s.ExpiresAt = info.ExpiresAt
		}
	}
	return s, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
