package contrato

import (
	"gorm.io/gorm"
)

// Repository encapsula operações de banco para Contrato.
// Toda consulta é restrita ao corretor dono dos registros.
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Criar insere um novo contrato de locação
func (r *Repository) Criar(c *Contrato) error {
	return r.DB.Create(c).Error
}

// ListarPorUsuario retorna todos os contratos do corretor,
// do mais recente para o mais antigo.
func (r *Repository) ListarPorUsuario(usuarioID uint) ([]Contrato, error) {
	var list []Contrato
	err := r.DB.
		Where("usuario_id = ?", usuarioID).
		Order("created_at DESC, id DESC").
		Find(&list).Error
	return list, err
}

// BuscarPorID retorna um contrato pelo ID, se pertencer ao corretor
func (r *Repository) BuscarPorID(usuarioID, id uint) (*Contrato, error) {
	var c Contrato
	if err := r.DB.Where("usuario_id = ?", usuarioID).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// Atualizar salva alterações em um contrato existente
func (r *Repository) Atualizar(c *Contrato) error {
	return r.DB.Save(c).Error
}

// Deletar remove um contrato do banco
func (r *Repository) Deletar(c *Contrato) error {
	return r.DB.Delete(c).Error
}
