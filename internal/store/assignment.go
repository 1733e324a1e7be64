package store

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"project-admin/internal/database"
	"project-admin/internal/model"

	"github.com/jackc/pgx/v5"
)

func collectAssignments(rows pgx.Rows) ([]model.Assignment, error) {
	defer rows.Close()
	out := []model.Assignment{}
	for rows.Next() {
		var a model.Assignment
		if err := rows.Scan(&a.ProjectID, &a.UserID); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListProjectIDsForUser 回傳 userID 被指派的所有 project id（遞增排序）
func ListProjectIDsForUser(ctx context.Context, db database.DB, userID int) ([]int, error) {
	rows, err := db.Query(ctx,
		`SELECT project_id FROM project_assignments WHERE user_id = $1 ORDER BY project_id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListProjectIDsForUser: %w", err)
	}
	defer rows.Close()

	ids := []int{}
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("ListProjectIDsForUser: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListProjectIDsForUser: %w", err)
	}
	return ids, nil
}

func ListAssignmentsForProject(ctx context.Context, db database.DB, projectID int) ([]model.Assignment, error) {
	rows, err := db.Query(ctx,
		`SELECT project_id, user_id FROM project_assignments WHERE project_id = $1 ORDER BY user_id`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListAssignmentsForProject: %w", err)
	}
	out, err := collectAssignments(rows)
	if err != nil {
		return nil, fmt.Errorf("ListAssignmentsForProject: %w", err)
	}
	return out, nil
}

// ReplaceAssignments 以 userIDs 完整取代 projectID 的指派集合。
// 鎖住 project 列、刪除舊邊、插入新邊都在同一個 transaction 內，
// 其他連線只會看到舊集合或新集合。重複的 user id 只產生一條邊；空集合等於清空。
func ReplaceAssignments(ctx context.Context, db database.DB, projectID int, userIDs []int) ([]model.Assignment, error) {
	ids := uniqueIDs(userIDs)
	out := []model.Assignment{}

	err := database.InTx(ctx, db, func(tx pgx.Tx) error {
		var locked int
		if err := tx.QueryRow(ctx,
			`SELECT id FROM projects WHERE id = $1 FOR UPDATE`,
			projectID,
		).Scan(&locked); err != nil {
			return err
		}

		if _, err := tx.Exec(ctx,
			`DELETE FROM project_assignments WHERE project_id = $1`,
			projectID,
		); err != nil {
			return err
		}

		if len(ids) == 0 {
			return nil
		}

		rows, err := tx.Query(ctx,
			`INSERT INTO project_assignments (project_id, user_id)
			 SELECT $1, unnest($2::int[])
			 ON CONFLICT DO NOTHING
			 RETURNING project_id, user_id`,
			projectID,
			ids,
		)
		if err != nil {
			return err
		}
		inserted, err := collectAssignments(rows)
		if err != nil {
			return err
		}
		out = inserted
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ReplaceAssignments: %w", translate(err))
	}

	slices.SortFunc(out, func(a, b model.Assignment) int { return cmp.Compare(a.UserID, b.UserID) })
	return out, nil
}

func uniqueIDs(ids []int) []int {
	out := slices.Clone(ids)
	slices.Sort(out)
	return slices.Compact(out)
}
