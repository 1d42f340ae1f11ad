package store

import (
	"context"

	"github.com/google/uuid"

	"serenity-api/internal/model"
)

// CreateArticle inserts a community article and returns the assigned id.
func (s *Store) CreateArticle(ctx context.Context, a *model.Article) (string, error) {
	id := uuid.New().String()
	_, err := s.pool.Exec(ctx,
		`INSERT INTO articles (id, title, content, author, uid, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6)`,
		id, a.Title, a.Content, a.Author, nullable(a.UID), a.CreatedAt,
	)
	if err != nil {
		return "", err
	}
	a.ID = id
	return id, nil
}

// ListArticles returns all articles, newest first.
func (s *Store) ListArticles(ctx context.Context) ([]model.Article, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, title, content, author, COALESCE(uid, ''), created_at
		 FROM articles
		 ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Article
	for rows.Next() {
		var a model.Article
		if err := rows.Scan(&a.ID, &a.Title, &a.Content, &a.Author, &a.UID, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
