package repository

import "github.com/Crokily/aibuild-dashboard/internal/domain/entity"

// ProductRepository puerto de persistencia para productos.
// La base de datos es dueña de la fila canónica; el pipeline de ingesta solo
// mantiene copias transitorias por request.
type ProductRepository interface {
	// Upsert inserta el producto si el Code no existe, o actualiza únicamente
	// su Name si ya existe. En ambos casos deja en p.ID el id estable.
	Upsert(p *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCode(code string) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
}
