package projects

import (
	"errors"
	"net/http"

	"project-admin/internal/api"
	"project-admin/internal/database"
	"project-admin/internal/handler"
	"project-admin/internal/metrics"
	"project-admin/internal/service"
	"project-admin/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// @Summary     Replace project assignments
// @Description 以 userIds 整批取代專案的指派；空陣列代表清空。未知的 user id 回傳 422 且不做任何變更
// @Tags        projects
// @Accept      json
// @Produce     json
// @Param       id   path     int               true "專案 ID"
// @Param       body body     api.AssignRequest true "使用者 ID 清單"
// @Success     200  {array}  api.AssignmentResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     403  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Failure     422  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Security    SessionCookie
// @Security    BearerAuth
// @Router      /projects/{id}/assign [post]
func AssignHandler(db database.DB) handler.IdentityHandlerFunc {
	return func(c echo.Context, id service.Identity) error {
		projectID, err := handler.ParamID(c, "id")
		if err != nil {
			return handler.RespondError(c, err)
		}
		var req api.AssignRequest
		if err := handler.Bind(c, &req); err != nil {
			return handler.RespondError(c, err)
		}

		ctx := c.Request().Context()
		edges, err := replaceAssignments(ctx, db, projectID, req.UserIDs)
		if err != nil {
			metrics.AssignmentReplacementsTotal.WithLabelValues(replaceResult(err)).Inc()
			return handler.RespondError(c, err)
		}
		metrics.AssignmentReplacementsTotal.WithLabelValues("ok").Inc()
		metrics.AssignmentEdges.Observe(float64(len(edges)))

		zerolog.Ctx(ctx).Info().
			Int("project_id", projectID).
			Int("assignees", len(edges)).
			Int("by", id.UserID).
			Msg("assignments replaced")
		return c.JSON(http.StatusOK, api.NewAssignmentResponses(edges))
	}
}

// @Summary     List project assignments
// @Description 回傳專案目前的指派清單，僅限管理員
// @Tags        projects
// @Produce     json
// @Param       id  path     int true "專案 ID"
// @Success     200 {array}  api.AssignmentResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    SessionCookie
// @Security    BearerAuth
// @Router      /projects/{id}/assignments [get]
func ListAssignmentsHandler(db database.DB) handler.IdentityHandlerFunc {
	return func(c echo.Context, _ service.Identity) error {
		projectID, err := handler.ParamID(c, "id")
		if err != nil {
			return handler.RespondError(c, err)
		}
		ctx := c.Request().Context()
		if _, err := getProjectByID(ctx, db, projectID); err != nil {
			return handler.RespondError(c, err)
		}
		edges, err := listAssignmentsForProject(ctx, db, projectID)
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, api.NewAssignmentResponses(edges))
	}
}

func replaceResult(err error) string {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return "not_found"
	case errors.Is(err, store.ErrInvalidReference):
		return "invalid_reference"
	default:
		return "error"
	}
}
