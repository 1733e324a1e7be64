package store

import (
	"context"
	"fmt"

	"project-admin/internal/database"
	"project-admin/internal/model"

	"github.com/jackc/pgx/v5"
)

const projectColumns = `p.id, p.name, p.thumbnail_url, p.created_at, p.updated_at`

func scanProject(row pgx.Row, p *model.Project) error {
	return row.Scan(
		&p.ID,
		&p.Name,
		&p.ThumbnailURL,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
}

func collectProjects(rows pgx.Rows) ([]model.Project, error) {
	defer rows.Close()
	projects := []model.Project{}
	for rows.Next() {
		var p model.Project
		if err := scanProject(rows, &p); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return projects, nil
}

// ListProjects 回傳所有專案 (admin 視角)
func ListProjects(ctx context.Context, db database.DB) ([]model.Project, error) {
	rows, err := db.Query(ctx, `SELECT `+projectColumns+` FROM projects p ORDER BY p.id`)
	if err != nil {
		return nil, fmt.Errorf("ListProjects: %w", err)
	}
	projects, err := collectProjects(rows)
	if err != nil {
		return nil, fmt.Errorf("ListProjects: %w", err)
	}
	return projects, nil
}

// ListProjectsForUser 只回傳有指派給 userID 的專案
func ListProjectsForUser(ctx context.Context, db database.DB, userID int) ([]model.Project, error) {
	rows, err := db.Query(ctx,
		`SELECT `+projectColumns+`
		 FROM projects p
		 JOIN project_assignments pa ON pa.project_id = p.id
		 WHERE pa.user_id = $1
		 ORDER BY p.id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListProjectsForUser: %w", err)
	}
	projects, err := collectProjects(rows)
	if err != nil {
		return nil, fmt.Errorf("ListProjectsForUser: %w", err)
	}
	return projects, nil
}

func GetProjectByID(ctx context.Context, db database.DB, projectID int) (*model.Project, error) {
	row := db.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects p WHERE p.id = $1`, projectID)
	p := &model.Project{}
	if err := scanProject(row, p); err != nil {
		return nil, fmt.Errorf("GetProjectByID: %w", translate(err))
	}
	return p, nil
}

func CreateProject(ctx context.Context, db database.DB, p *model.Project) (*model.Project, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO projects (name, thumbnail_url)
		 VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		p.Name,
		p.ThumbnailURL,
	)
	if err := row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateProject: %w", translate(err))
	}
	return p, nil
}

// UpdateProject 覆寫 name 與 thumbnail_url 並回傳更新後的資料
func UpdateProject(ctx context.Context, db database.DB, p *model.Project) (*model.Project, error) {
	row := db.QueryRow(ctx,
		`UPDATE projects p
		 SET name = $1, thumbnail_url = $2, updated_at = now()
		 WHERE p.id = $3
		 RETURNING `+projectColumns,
		p.Name,
		p.ThumbnailURL,
		p.ID,
	)
	updated := &model.Project{}
	if err := scanProject(row, updated); err != nil {
		return nil, fmt.Errorf("UpdateProject: %w", translate(err))
	}
	return updated, nil
}

func DeleteProject(ctx context.Context, db database.DB, projectID int) (*model.Project, error) {
	row := db.QueryRow(ctx,
		`DELETE FROM projects p WHERE p.id = $1 RETURNING `+projectColumns,
		projectID,
	)
	p := &model.Project{}
	if err := scanProject(row, p); err != nil {
		return nil, fmt.Errorf("DeleteProject: %w", translate(err))
	}
	return p, nil
}
