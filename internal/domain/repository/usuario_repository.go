package repository

import "github.com/jcondori/kardex-api/internal/domain/entity"

// UsuarioRepository puerto de persistencia para usuarios.
type UsuarioRepository interface {
	Create(u *entity.Usuario) error
	FindByUsuario(usuario string) (*entity.Usuario, error)
}
