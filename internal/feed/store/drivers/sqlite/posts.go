package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/bailanysta/api/internal/feed/domain"
)

type postsRepo struct {
	q dbtx
}

const postSelect = `
SELECT p.id, p.author_id, u.username, p.content, p.created_at, p.updated_at
FROM posts p
JOIN users u ON u.id = p.author_id`

func (r *postsRepo) CreatePost(ctx context.Context, p domain.Post) error {
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}

	_, err := r.q.ExecContext(ctx,
		`INSERT INTO posts (id, author_id, content, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		p.ID, p.AuthorID, p.Content, p.CreatedAt, p.UpdatedAt,
	)
	return err
}

func (r *postsRepo) GetPostByID(ctx context.Context, id string) (domain.Post, error) {
	row := r.q.QueryRowContext(ctx, postSelect+` WHERE p.id = ?`, id)

	var p domain.Post
	if err := row.Scan(&p.ID, &p.AuthorID, &p.AuthorName, &p.Content, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return domain.Post{}, mapNotFound(err)
	}

	posts := []domain.Post{p}
	if err := r.hydrate(ctx, posts); err != nil {
		return domain.Post{}, err
	}
	return posts[0], nil
}

func (r *postsRepo) ListFeed(ctx context.Context, viewerID string) ([]domain.Post, error) {
	rows, err := r.q.QueryContext(ctx, postSelect+`
		WHERE p.author_id = ?
		   OR p.author_id IN (SELECT followee_id FROM follows WHERE follower_id = ?)
		ORDER BY p.created_at DESC, p.id DESC`,
		viewerID, viewerID,
	)
	if err != nil {
		return nil, err
	}
	return r.collect(ctx, rows)
}

func (r *postsRepo) ListByAuthor(ctx context.Context, authorID string) ([]domain.Post, error) {
	rows, err := r.q.QueryContext(ctx, postSelect+`
		WHERE p.author_id = ?
		ORDER BY p.created_at DESC, p.id DESC`,
		authorID,
	)
	if err != nil {
		return nil, err
	}
	return r.collect(ctx, rows)
}

func (r *postsRepo) UpdateContent(ctx context.Context, postID, content string) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE posts SET content = ?, updated_at = ? WHERE id = ?`,
		content, time.Now().UTC(), postID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *postsRepo) DeletePost(ctx context.Context, postID string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, postID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *postsRepo) AddLike(ctx context.Context, postID, userID string) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT OR IGNORE INTO post_likes (post_id, user_id, created_at) VALUES (?, ?, ?)`,
		postID, userID, time.Now().UTC(),
	)
	return err
}

func (r *postsRepo) RemoveLike(ctx context.Context, postID, userID string) error {
	_, err := r.q.ExecContext(ctx,
		`DELETE FROM post_likes WHERE post_id = ? AND user_id = ?`,
		postID, userID,
	)
	return err
}

func (r *postsRepo) AddComment(ctx context.Context, c domain.Comment) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	_, err := r.q.ExecContext(ctx,
		`INSERT INTO comments (id, post_id, author_id, text, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.PostID, c.AuthorID, c.Text, c.CreatedAt,
	)
	return err
}

// collect drains post rows and hydrates likes and comments in two batched
// queries. N posts cost three queries total, not 2N+1.
func (r *postsRepo) collect(ctx context.Context, rows *sql.Rows) ([]domain.Post, error) {
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(&p.ID, &p.AuthorID, &p.AuthorName, &p.Content, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.hydrate(ctx, posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postsRepo) hydrate(ctx context.Context, posts []domain.Post) error {
	if len(posts) == 0 {
		return nil
	}

	index := make(map[string]*domain.Post, len(posts))
	args := make([]any, 0, len(posts))
	for i := range posts {
		posts[i].Likes = []string{}
		posts[i].Comments = []domain.Comment{}
		index[posts[i].ID] = &posts[i]
		args = append(args, posts[i].ID)
	}
	in := placeholders(len(posts))

	likeRows, err := r.q.QueryContext(ctx,
		`SELECT post_id, user_id FROM post_likes
		 WHERE post_id IN (`+in+`) ORDER BY created_at, user_id`, args...)
	if err != nil {
		return err
	}
	defer likeRows.Close()
	for likeRows.Next() {
		var postID, userID string
		if err := likeRows.Scan(&postID, &userID); err != nil {
			return err
		}
		if p := index[postID]; p != nil {
			p.Likes = append(p.Likes, userID)
		}
	}
	if err := likeRows.Err(); err != nil {
		return err
	}

	commentRows, err := r.q.QueryContext(ctx,
		`SELECT c.id, c.post_id, c.author_id, u.username, c.text, c.created_at
		 FROM comments c
		 JOIN users u ON u.id = c.author_id
		 WHERE c.post_id IN (`+in+`) ORDER BY c.created_at, c.id`, args...)
	if err != nil {
		return err
	}
	defer commentRows.Close()
	for commentRows.Next() {
		var c domain.Comment
		if err := commentRows.Scan(&c.ID, &c.PostID, &c.AuthorID, &c.AuthorName, &c.Text, &c.CreatedAt); err != nil {
			return err
		}
		if p := index[c.PostID]; p != nil {
			p.Comments = append(p.Comments, c)
		}
	}
	return commentRows.Err()
}
