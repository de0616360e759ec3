package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"fit-coach/config"
	"fit-coach/internal/models"
)

// Postgres error codes translated into domain error kinds.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

type PostgresDB struct {
	pool *pgxpool.Pool
}

func NewPostgresDB(cfg *config.Config) (*PostgresDB, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s pool_max_conns=%d",
		cfg.DB.Host, cfg.DB.Port, cfg.DB.User, cfg.DB.Password, cfg.DB.DBName,
		cfg.DB.SSLMode, cfg.DB.MaxOpenConns,
	)

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DB connection string: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.DB.MaxOpenConns)
	poolConfig.MinConns = int32(cfg.DB.MaxIdleConns)
	poolConfig.MaxConnLifetime = cfg.DB.ConnLifetime
	poolConfig.MaxConnIdleTime = 15 * time.Minute

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.ConnectConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresDB{pool: pool}, nil
}

func (db *PostgresDB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Migrate creates the schema and seeds the default activity levels.
func (db *PostgresDB) Migrate(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS activity_levels (
			level INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id BIGINT PRIMARY KEY,
			username TEXT,
			age INTEGER NOT NULL,
			weight_kg DOUBLE PRECISION NOT NULL,
			height_cm DOUBLE PRECISION NOT NULL,
			gender TEXT NOT NULL,
			goal TEXT,
			activity_level INTEGER NOT NULL REFERENCES activity_levels(level),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS training_plans (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
			plan_description TEXT NOT NULL
		)`,
		`INSERT INTO activity_levels (level, name, description) VALUES
			(1, 'Низкая активность', 'Сидячий образ жизни, тренировок нет'),
			(2, 'Небольшая активность', 'Легкие тренировки 1-2 раза в неделю'),
			(3, 'Умеренная активность', 'Тренировки 3-4 раза в неделю'),
			(4, 'Высокая активность', 'Интенсивные тренировки 5 и более раз в неделю')
		ON CONFLICT (level) DO NOTHING`,
	}

	for _, stmt := range statements {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// translateError maps pgx failures to the domain taxonomy.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return models.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return models.ErrAlreadyExists
		case codeForeignKeyViolation:
			return models.ErrNotFound
		}
	}
	return err
}

const userColumns = `
	u.id, u.username, u.age, u.weight_kg, u.height_cm, u.gender, u.goal,
	u.activity_level, u.created_at, u.updated_at,
	l.level, l.name, l.description,
	p.id, p.user_id, p.plan_description`

const userJoins = `
	FROM users u
	JOIN activity_levels l ON l.level = u.activity_level
	LEFT JOIN training_plans p ON p.user_id = u.id`

func scanUser(row pgx.Row) (*models.User, error) {
	var (
		user     models.User
		username *string
		goal     *string
		level    models.ActivityLevel
		planID   *int64
		planUser *int64
		planText *string
	)
	err := row.Scan(
		&user.ID, &username, &user.Age, &user.WeightKg, &user.HeightCm, &user.Gender, &goal,
		&user.ActivityLevel, &user.CreatedAt, &user.UpdatedAt,
		&level.Level, &level.Name, &level.Description,
		&planID, &planUser, &planText,
	)
	if err != nil {
		return nil, translateError(err)
	}
	if username != nil {
		user.Username = *username
	}
	if goal != nil {
		user.Goal = *goal
	}
	user.LevelInfo = &level
	if planID != nil {
		user.TrainingPlan = &models.TrainingPlan{
			ID:              *planID,
			UserID:          *planUser,
			PlanDescription: *planText,
		}
	}
	return &user, nil
}

func (db *PostgresDB) CreateUser(ctx context.Context, input *models.UserInput) error {
	query := `
		INSERT INTO users (id, username, age, weight_kg, height_cm, gender, goal, activity_level)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := db.pool.Exec(ctx, query,
		input.ID, input.Username, input.Age, input.WeightKg, input.HeightCm,
		input.Gender, input.Goal, input.ActivityLevel,
	)
	return translateError(err)
}

func (db *PostgresDB) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	query := `SELECT` + userColumns + userJoins + ` WHERE u.id = $1`
	return scanUser(db.pool.QueryRow(ctx, query, userID))
}

func (db *PostgresDB) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	query := `SELECT` + userColumns + userJoins + ` ORDER BY u.id`
	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// UpdateUser applies a partial update, touching only the fields set in
// the patch.
func (db *PostgresDB) UpdateUser(ctx context.Context, userID int64, patch *models.UserUpdate) error {
	set, args := buildUserPatch(patch)
	if len(set) == 0 {
		return nil
	}
	args = append(args, userID)
	query := fmt.Sprintf("UPDATE users SET %s, updated_at = NOW() WHERE id = $%d",
		joinClauses(set), len(args))

	tag, err := db.pool.Exec(ctx, query, args...)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func buildUserPatch(patch *models.UserUpdate) ([]string, []interface{}) {
	var (
		set  []string
		args []interface{}
	)
	add := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.Username != nil {
		add("username", *patch.Username)
	}
	if patch.Age != nil {
		add("age", *patch.Age)
	}
	if patch.WeightKg != nil {
		add("weight_kg", *patch.WeightKg)
	}
	if patch.HeightCm != nil {
		add("height_cm", *patch.HeightCm)
	}
	if patch.Gender != nil {
		add("gender", *patch.Gender)
	}
	if patch.Goal != nil {
		add("goal", *patch.Goal)
	}
	if patch.ActivityLevel != nil {
		add("activity_level", *patch.ActivityLevel)
	}
	return set, args
}

func joinClauses(clauses []string) string {
	out := ""
	for i, c := range clauses {
		if i > 0 {
			out += ", "
		}
		out += c
	}
	return out
}

func (db *PostgresDB) DeleteUser(ctx context.Context, userID int64) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (db *PostgresDB) GetActivityLevel(ctx context.Context, level int) (*models.ActivityLevel, error) {
	var l models.ActivityLevel
	err := db.pool.QueryRow(ctx,
		`SELECT level, name, description FROM activity_levels WHERE level = $1`, level,
	).Scan(&l.Level, &l.Name, &l.Description)
	if err != nil {
		return nil, translateError(err)
	}
	return &l, nil
}

func (db *PostgresDB) ListActivityLevels(ctx context.Context) ([]models.ActivityLevel, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT level, name, description FROM activity_levels ORDER BY level`)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var levels []models.ActivityLevel
	for rows.Next() {
		var l models.ActivityLevel
		if err := rows.Scan(&l.Level, &l.Name, &l.Description); err != nil {
			return nil, translateError(err)
		}
		levels = append(levels, l)
	}
	return levels, rows.Err()
}

func (db *PostgresDB) CreateActivityLevel(ctx context.Context, level *models.ActivityLevel) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO activity_levels (level, name, description) VALUES ($1, $2, $3)`,
		level.Level, level.Name, level.Description)
	return translateError(err)
}

func (db *PostgresDB) UpdateActivityLevel(ctx context.Context, level *models.ActivityLevel) error {
	tag, err := db.pool.Exec(ctx,
		`UPDATE activity_levels SET name = $2, description = $3 WHERE level = $1`,
		level.Level, level.Name, level.Description)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (db *PostgresDB) DeleteActivityLevel(ctx context.Context, level int) error {
	tag, err := db.pool.Exec(ctx,
		`DELETE FROM activity_levels WHERE level = $1`, level)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (db *PostgresDB) GetPlanByUserID(ctx context.Context, userID int64) (*models.TrainingPlan, error) {
	var plan models.TrainingPlan
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, plan_description FROM training_plans WHERE user_id = $1`, userID,
	).Scan(&plan.ID, &plan.UserID, &plan.PlanDescription)
	if err != nil {
		return nil, translateError(err)
	}
	return &plan, nil
}

func (db *PostgresDB) CreatePlanForUser(ctx context.Context, userID int64, description string) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO training_plans (user_id, plan_description) VALUES ($1, $2)`,
		userID, description)
	return translateError(err)
}

func (db *PostgresDB) UpdatePlanByUserID(ctx context.Context, userID int64, description string) error {
	tag, err := db.pool.Exec(ctx,
		`UPDATE training_plans SET plan_description = $2 WHERE user_id = $1`,
		userID, description)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (db *PostgresDB) DeletePlanByUserID(ctx context.Context, userID int64) error {
	tag, err := db.pool.Exec(ctx,
		`DELETE FROM training_plans WHERE user_id = $1`, userID)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
