package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Crokily/aibuild-dashboard/internal/domain"
	"github.com/Crokily/aibuild-dashboard/internal/domain/entity"
	"github.com/Crokily/aibuild-dashboard/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Upsert inserta el producto o, si el código ya existe, actualiza solo su nombre.
// El ON CONFLICT garantiza que RETURNING devuelva siempre el id estable de la
// fila canónica; se escribe de vuelta en p.ID.
func (r *ProductRepo) Upsert(p *entity.Product) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	query := `
		INSERT INTO products (id, code, name, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now())
		ON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name, updated_at = now()
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(context.Background(), query, p.ID, p.Code, p.Name).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. No existe → domain.ErrNotFound.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT id, code, name, created_at, updated_at
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Code, &p.Name, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// GetByCode obtiene un producto por código. No existe → domain.ErrNotFound.
func (r *ProductRepo) GetByCode(code string) (*entity.Product, error) {
	query := `
		SELECT id, code, name, created_at, updated_at
		FROM products WHERE code = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, code).Scan(
		&p.ID, &p.Code, &p.Name, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get product by code: %w", err)
	}
	return &p, nil
}

// List lista productos ordenados por código, con paginación.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT id, code, name, created_at, updated_at
		FROM products ORDER BY code LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Code, &p.Name, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
