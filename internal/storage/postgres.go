package storage

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/intentia/backend/internal/models"
)

//go:embed migrations.sql
var migrations embed.FS

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	UseInMemory bool
}

type PostgresStorage struct {
	db *sql.DB
}

func NewPostgresStorage(config DatabaseConfig) (*PostgresStorage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		config.Host, config.Port, config.User, config.Password, config.DBName, config.SSLMode)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %v", err)
	}

	// Fail fast at boot, not at request time
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to the database: %v", err)
	}

	storage := &PostgresStorage{db: db}

	if err := storage.initializeSchema(); err != nil {
		return nil, fmt.Errorf("error initializing database schema: %v", err)
	}

	return storage, nil
}

func (s *PostgresStorage) initializeSchema() error {
	migrationSQL, err := migrations.ReadFile("migrations.sql")
	if err != nil {
		return fmt.Errorf("error reading migrations file: %v", err)
	}

	_, err = s.db.Exec(string(migrationSQL))
	if err != nil {
		return fmt.Errorf("error executing migrations: %v", err)
	}

	return nil
}

const postColumns = `id, author_id, content, category, summary, keywords, hashtags,
	media_url, media_type, media_id, likes, comments_count, flagged, flag_reasons,
	visible, created_at`

func (s *PostgresStorage) CreatePost(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO posts (id, author_id, content, category, summary, keywords,
			hashtags, media_url, media_type, media_id, likes, comments_count,
			flagged, flag_reasons, visible)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING created_at`

	err := s.db.QueryRowContext(ctx, query,
		post.ID,
		post.AuthorID,
		post.Content,
		post.Category,
		post.Summary,
		pq.Array(post.Keywords),
		pq.Array(post.Hashtags),
		post.MediaURL,
		post.MediaType,
		post.MediaID,
		pq.Array(post.Likes),
		post.CommentsCount,
		post.Flagged,
		pq.Array(post.FlagReasons),
		post.Visible,
	).Scan(&post.CreatedAt)

	if err != nil {
		return fmt.Errorf("error creating post: %v", err)
	}
	return nil
}

func (s *PostgresStorage) GetPost(ctx context.Context, id string) (*models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`
	post, err := scanPost(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error querying post: %v", err)
	}
	return post, nil
}

func (s *PostgresStorage) DeletePost(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting post: %v", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %v", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStorage) PostsByCategory(ctx context.Context, category string, limit, offset int) ([]*models.Post, int, error) {
	where := `visible`
	args := []any{}
	if category != "All" {
		where += ` AND category = $1`
		args = append(args, category)
	}

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting posts: %v", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM posts WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		postColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	posts, err := s.queryPosts(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (s *PostgresStorage) PostsByHashtag(ctx context.Context, hashtag string, limit, offset int) ([]*models.Post, int, error) {
	var total int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM posts WHERE visible AND $1 = ANY(hashtags)`,
		hashtag).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting posts by hashtag: %v", err)
	}

	query := `SELECT ` + postColumns + `
		FROM posts
		WHERE visible AND $1 = ANY(hashtags)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	posts, err := s.queryPosts(ctx, query, hashtag, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (s *PostgresStorage) TrendingPosts(ctx context.Context, category string, since time.Time, limit int) ([]*models.Post, error) {
	where := `visible AND created_at >= $1`
	args := []any{since}
	if category != "All" {
		where += ` AND category = $2`
		args = append(args, category)
	}

	query := fmt.Sprintf(`SELECT %s
		FROM posts
		WHERE %s
		ORDER BY cardinality(likes) + 2 * comments_count DESC
		LIMIT $%d`, postColumns, where, len(args)+1)
	args = append(args, limit)

	return s.queryPosts(ctx, query, args...)
}

func (s *PostgresStorage) TrendingHashtags(ctx context.Context, since time.Time, limit int) ([]models.HashtagCount, error) {
	query := `
		SELECT h, COUNT(*) AS uses
		FROM posts, unnest(hashtags) AS h
		WHERE created_at >= $1
		GROUP BY h
		ORDER BY uses DESC, h ASC
		LIMIT $2`

	rows, err := s.db.QueryContext(ctx, query, since, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying trending hashtags: %v", err)
	}
	defer rows.Close()

	var result []models.HashtagCount
	for rows.Next() {
		var hc models.HashtagCount
		if err := rows.Scan(&hc.Hashtag, &hc.Count); err != nil {
			return nil, fmt.Errorf("error scanning hashtag count: %v", err)
		}
		result = append(result, hc)
	}
	return result, rows.Err()
}

func (s *PostgresStorage) ToggleLike(ctx context.Context, postID, userID string) (bool, int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, 0, fmt.Errorf("error starting transaction: %v", err)
	}
	defer tx.Rollback()

	var likes pq.StringArray
	err = tx.QueryRowContext(ctx,
		`SELECT likes FROM posts WHERE id = $1 FOR UPDATE`, postID).Scan(&likes)
	if err == sql.ErrNoRows {
		return false, 0, ErrNotFound
	}
	if err != nil {
		return false, 0, fmt.Errorf("error locking post: %v", err)
	}

	liked := true
	updated := make([]string, 0, len(likes)+1)
	for _, id := range likes {
		if id == userID {
			liked = false
			continue
		}
		updated = append(updated, id)
	}
	if liked {
		updated = append(updated, userID)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE posts SET likes = $1 WHERE id = $2`, pq.Array(updated), postID); err != nil {
		return false, 0, fmt.Errorf("error updating likes: %v", err)
	}
	if err := tx.Commit(); err != nil {
		return false, 0, fmt.Errorf("error committing like: %v", err)
	}
	return liked, len(updated), nil
}

func (s *PostgresStorage) CreateComment(ctx context.Context, comment *models.Comment) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %v", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO comments (id, post_id, author_id, content)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`,
		comment.ID, comment.PostID, comment.AuthorID, comment.Content,
	).Scan(&comment.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating comment: %v", err)
	}

	result, err := tx.ExecContext(ctx,
		`UPDATE posts SET comments_count = comments_count + 1 WHERE id = $1`,
		comment.PostID)
	if err != nil {
		return fmt.Errorf("error bumping comment count: %v", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %v", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return tx.Commit()
}

func (s *PostgresStorage) CommentsByPost(ctx context.Context, postID string) ([]*models.Comment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, post_id, author_id, content, created_at
		FROM comments
		WHERE post_id = $1
		ORDER BY created_at DESC`, postID)
	if err != nil {
		return nil, fmt.Errorf("error querying comments: %v", err)
	}
	defer rows.Close()

	var comments []*models.Comment
	for rows.Next() {
		comment := &models.Comment{}
		if err := rows.Scan(&comment.ID, &comment.PostID, &comment.AuthorID,
			&comment.Content, &comment.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning comment: %v", err)
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

func (s *PostgresStorage) GetUser(ctx context.Context, id string) (*models.User, error) {
	user := &models.User{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, username, bio, profile_picture, total_posts, clarity_score, created_at
		FROM users
		WHERE id = $1`, id).Scan(
		&user.ID, &user.Username, &user.Bio, &user.ProfilePicture,
		&user.TotalPosts, &user.ClarityScore, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error querying user: %v", err)
	}
	return user, nil
}

func (s *PostgresStorage) AdjustUserStats(ctx context.Context, userID string, postsDelta, clarityDelta int) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, total_posts, clarity_score)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE
		SET total_posts = users.total_posts + $2,
		    clarity_score = users.clarity_score + $3`,
		userID, postsDelta, clarityDelta)
	if err != nil {
		return fmt.Errorf("error updating user stats: %v", err)
	}
	return nil
}

func (s *PostgresStorage) RecordActivity(ctx context.Context, activity *models.Activity) error {
	target := sql.NullString{String: activity.TargetPost, Valid: activity.TargetPost != ""}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO activities (id, user_id, type, action, target_post)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`,
		activity.ID, activity.UserID, activity.Type, activity.Action, target,
	).Scan(&activity.CreatedAt)
	if err != nil {
		return fmt.Errorf("error recording activity: %v", err)
	}
	return nil
}

func (s *PostgresStorage) ActivitiesByUser(ctx context.Context, userID string, limit int) ([]*models.Activity, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, type, action, target_post, created_at
		FROM activities
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying activities: %v", err)
	}
	defer rows.Close()

	var activities []*models.Activity
	for rows.Next() {
		activity := &models.Activity{}
		var target sql.NullString
		if err := rows.Scan(&activity.ID, &activity.UserID, &activity.Type,
			&activity.Action, &target, &activity.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning activity: %v", err)
		}
		activity.TargetPost = target.String
		activities = append(activities, activity)
	}
	return activities, rows.Err()
}

func (s *PostgresStorage) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (*models.Post, error) {
	post := &models.Post{}
	var keywords, hashtags, likes, flagReasons pq.StringArray
	var mediaType string
	err := row.Scan(
		&post.ID, &post.AuthorID, &post.Content, &post.Category, &post.Summary,
		&keywords, &hashtags, &post.MediaURL, &mediaType, &post.MediaID,
		&likes, &post.CommentsCount, &post.Flagged, &flagReasons,
		&post.Visible, &post.CreatedAt)
	if err != nil {
		return nil, err
	}
	post.Keywords = keywords
	post.Hashtags = hashtags
	post.Likes = likes
	post.FlagReasons = flagReasons
	post.MediaType = models.MediaType(mediaType)
	return post, nil
}

func (s *PostgresStorage) queryPosts(ctx context.Context, query string, args ...any) ([]*models.Post, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying posts: %v", err)
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning post: %v", err)
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}
