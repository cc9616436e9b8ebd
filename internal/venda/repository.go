package venda

import (
	"gorm.io/gorm"
)

// Repository encapsula operações de banco para Venda.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Criar(v *Venda) error {
	return r.DB.Create(v).Error
}

// ListarPorUsuario retorna as vendas do corretor, da mais recente para a mais antiga.
func (r *Repository) ListarPorUsuario(usuarioID uint) ([]Venda, error) {
	var list []Venda
	err := r.DB.
		Where("usuario_id = ?", usuarioID).
		Order("created_at DESC, id DESC").
		Find(&list).Error
	return list, err
}

func (r *Repository) BuscarPorID(usuarioID, id uint) (*Venda, error) {
	var v Venda
	if err := r.DB.Where("usuario_id = ?", usuarioID).First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *Repository) Atualizar(v *Venda) error {
	return r.DB.Save(v).Error
}

func (r *Repository) Deletar(v *Venda) error {
	return r.DB.Delete(v).Error
}
