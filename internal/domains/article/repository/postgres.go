package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/moha528/quickpress-back/internal/domains/article"
)

const foreignKeyViolation = "23503"

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) article.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, a *article.Article) (int64, error) {
	query := `
		INSERT INTO articles (title, content, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now())
		RETURNING id, created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query, a.Title, a.Content, a.CategoryID).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return 0, article.ErrInvalidCategory
		}
		return 0, fmt.Errorf("create article: %w", err)
	}

	return a.ID, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*article.Article, error) {
	query := `
		SELECT a.id, a.title, a.content, a.category_id, c.name, a.created_at, a.updated_at
		FROM articles a
		JOIN categories c ON c.id = a.category_id
		WHERE a.id = $1
	`

	var a article.Article
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&a.ID, &a.Title, &a.Content, &a.CategoryID, &a.CategoryName, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, article.ErrNotFound
		}
		return nil, fmt.Errorf("get article: %w", err)
	}
	return &a, nil
}

func (r *postgresRepository) List(ctx context.Context, params article.ListParams) ([]article.Article, int, error) {
	where, args := buildFilters(params)

	countQuery := `SELECT count(*) FROM articles a` + where
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count articles: %w", err)
	}

	pageQuery := `
		SELECT a.id, a.title, a.content, a.category_id, c.name, a.created_at, a.updated_at
		FROM articles a
		JOIN categories c ON c.id = a.category_id` + where + fmt.Sprintf(`
		ORDER BY a.created_at DESC
		LIMIT $%d OFFSET $%d
	`, len(args)+1, len(args)+2)
	args = append(args, params.Limit, params.Offset())

	rows, err := r.pool.Query(ctx, pageQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	articles := []article.Article{}
	for rows.Next() {
		var a article.Article
		err := rows.Scan(&a.ID, &a.Title, &a.Content, &a.CategoryID, &a.CategoryName, &a.CreatedAt, &a.UpdatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, a)
	}
	return articles, total, rows.Err()
}

// buildFilters renders the WHERE clause the listing filters call for. The
// search term matches title or content, case-insensitively.
func buildFilters(params article.ListParams) (string, []interface{}) {
	clauses := []string{}
	args := []interface{}{}

	if params.CategoryID != 0 {
		args = append(args, params.CategoryID)
		clauses = append(clauses, fmt.Sprintf("a.category_id = $%d", len(args)))
	}
	if params.Search != "" {
		args = append(args, "%"+params.Search+"%")
		clauses = append(clauses, fmt.Sprintf("(a.title ILIKE $%d OR a.content ILIKE $%d)", len(args), len(args)))
	}

	if len(clauses) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func (r *postgresRepository) Update(ctx context.Context, a *article.Article) error {
	query := `
		UPDATE articles
		SET title = $2, content = $3, category_id = $4, updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.pool.QueryRow(ctx, query, a.ID, a.Title, a.Content, a.CategoryID).
		Scan(&a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return article.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return article.ErrInvalidCategory
		}
		return fmt.Errorf("update article: %w", err)
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return article.ErrNotFound
	}
	return nil
}
