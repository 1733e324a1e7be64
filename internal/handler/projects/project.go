package projects

import (
	"net/http"
	"strings"

	"project-admin/internal/api"
	"project-admin/internal/database"
	"project-admin/internal/handler"
	"project-admin/internal/model"
	"project-admin/internal/service"
	"project-admin/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

var (
	listProjects              = store.ListProjects
	listProjectsForUser       = store.ListProjectsForUser
	getProjectByID            = store.GetProjectByID
	createProject             = store.CreateProject
	updateProject             = store.UpdateProject
	deleteProject             = store.DeleteProject
	listAssignmentsForProject = store.ListAssignmentsForProject
	replaceAssignments        = store.ReplaceAssignments
)

// @Summary     List projects
// @Description 管理員回傳全部專案；一般使用者只回傳被指派的專案
// @Tags        projects
// @Produce     json
// @Success     200 {array}  api.ProjectResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    SessionCookie
// @Security    BearerAuth
// @Router      /projects [get]
func ListProjectsHandler(db database.DB) handler.IdentityHandlerFunc {
	return func(c echo.Context, id service.Identity) error {
		ctx := c.Request().Context()

		var (
			projects []model.Project
			err      error
		)
		if service.Can(id, service.ReadAllProjects, service.Resource{}) {
			projects, err = listProjects(ctx, db)
		} else {
			projects, err = listProjectsForUser(ctx, db, id.UserID)
		}
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, api.NewProjectResponses(projects))
	}
}

// @Summary     Get a project by ID
// @Description 一般使用者只能讀取被指派的專案，其餘一律回傳 404
// @Tags        projects
// @Produce     json
// @Param       id  path     int true "專案 ID"
// @Success     200 {object} api.ProjectResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    SessionCookie
// @Security    BearerAuth
// @Router      /projects/{id} [get]
func GetProjectHandler(db database.DB) handler.IdentityHandlerFunc {
	return func(c echo.Context, id service.Identity) error {
		projectID, err := handler.ParamID(c, "id")
		if err != nil {
			return handler.RespondError(c, err)
		}
		ctx := c.Request().Context()

		if !service.Can(id, service.ReadAllProjects, service.Resource{}) {
			edges, err := listAssignmentsForProject(ctx, db, projectID)
			if err != nil {
				return handler.RespondError(c, err)
			}
			// 沒有權限與不存在回應相同，避免洩漏專案是否存在
			if !service.Can(id, service.ReadOwnProjects, service.ProjectResource(projectID, edges)) {
				return handler.RespondError(c, store.ErrNotFound)
			}
		}

		project, err := getProjectByID(ctx, db, projectID)
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, api.NewProjectResponse(*project))
	}
}

// @Summary     Create a project
// @Description 建立專案，name 去除前後空白後不可為空，僅限管理員
// @Tags        projects
// @Accept      json
// @Produce     json
// @Param       body body     api.ProjectRequest true "專案資料"
// @Success     201  {object} api.ProjectResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     403  {object} api.ErrorResponse
// @Failure     422  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Security    SessionCookie
// @Security    BearerAuth
// @Router      /projects [post]
func CreateProjectHandler(db database.DB) handler.IdentityHandlerFunc {
	return func(c echo.Context, id service.Identity) error {
		p, err := bindProject(c)
		if err != nil {
			return handler.RespondError(c, err)
		}
		ctx := c.Request().Context()
		created, err := createProject(ctx, db, p)
		if err != nil {
			return handler.RespondError(c, err)
		}
		zerolog.Ctx(ctx).Info().Int("project_id", created.ID).Int("by", id.UserID).Msg("project created")
		return c.JSON(http.StatusCreated, api.NewProjectResponse(*created))
	}
}

// @Summary     Update a project
// @Description 覆寫專案 name 與 thumbnail_url，僅限管理員
// @Tags        projects
// @Accept      json
// @Produce     json
// @Param       id   path     int                true "專案 ID"
// @Param       body body     api.ProjectRequest true "專案資料"
// @Success     200  {object} api.ProjectResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     403  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Failure     422  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Security    SessionCookie
// @Security    BearerAuth
// @Router      /projects/{id} [put]
func UpdateProjectHandler(db database.DB) handler.IdentityHandlerFunc {
	return func(c echo.Context, id service.Identity) error {
		projectID, err := handler.ParamID(c, "id")
		if err != nil {
			return handler.RespondError(c, err)
		}
		p, err := bindProject(c)
		if err != nil {
			return handler.RespondError(c, err)
		}
		p.ID = projectID

		updated, err := updateProject(c.Request().Context(), db, p)
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, api.NewProjectResponse(*updated))
	}
}

// @Summary     Delete a project
// @Description 刪除專案，指派關係一併移除，僅限管理員
// @Tags        projects
// @Produce     json
// @Param       id  path     int true "專案 ID"
// @Success     200 {object} api.ProjectResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    SessionCookie
// @Security    BearerAuth
// @Router      /projects/{id} [delete]
func DeleteProjectHandler(db database.DB) handler.IdentityHandlerFunc {
	return func(c echo.Context, id service.Identity) error {
		projectID, err := handler.ParamID(c, "id")
		if err != nil {
			return handler.RespondError(c, err)
		}
		ctx := c.Request().Context()
		deleted, err := deleteProject(ctx, db, projectID)
		if err != nil {
			return handler.RespondError(c, err)
		}
		zerolog.Ctx(ctx).Info().Int("project_id", deleted.ID).Int("by", id.UserID).Msg("project deleted")
		return c.JSON(http.StatusOK, api.NewProjectResponse(*deleted))
	}
}

func bindProject(c echo.Context) (*model.Project, error) {
	var req api.ProjectRequest
	if err := handler.Bind(c, &req); err != nil {
		return nil, err
	}
	p := &model.Project{Name: strings.TrimSpace(req.Name)}
	if req.ThumbnailURL != nil {
		if u := strings.TrimSpace(*req.ThumbnailURL); u != "" {
			p.ThumbnailURL = &u
		}
	}
	return p, nil
}
