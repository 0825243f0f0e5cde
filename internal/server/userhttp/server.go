package userhttp

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	gin "github.com/gin-gonic/gin"

	"github.com/gameshelf/gameshelf/internal/server/httpx"
	usersvc "github.com/gameshelf/gameshelf/internal/service/users"
)

// Server exposes users and favorites over HTTP.
type Server struct {
	svc       *usersvc.Service
	startedAt time.Time
	httpSrv   *http.Server
}

func New(svc *usersvc.Service) *Server {
	return &Server{svc: svc, startedAt: time.Now()}
}

func (s *Server) Engine() *gin.Engine {
	r := gin.New()
	r.Use(httpx.RequestID(), httpx.CORS(), httpx.Logger(), gin.Recovery())
	r.POST("/users", s.createUser)
	r.GET("/users", s.getUser)
	r.POST("/users/:user_id/favorites", s.addFavorite)
	r.GET("/users/:user_id/favorites", s.listFavorites)
	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/metrics", httpx.Metrics("user_service", s.startedAt))
	return r
}

// respondServiceError maps typed service failures to status codes. The
// service never sees HTTP; all mapping lives here.
func respondServiceError(c *gin.Context, err error) {
	var (
		exists  *usersvc.UserExistsError
		nf      *usersvc.UserNotFoundError
		favored *usersvc.AlreadyFavoredError
		store   *usersvc.StorageError
	)
	switch {
	case errors.As(err, &exists):
		httpx.Error(c, http.StatusConflict, exists.Error())
	case errors.As(err, &nf):
		httpx.Error(c, http.StatusNotFound, nf.Error())
	case errors.As(err, &favored):
		httpx.Error(c, http.StatusConflict, favored.Error())
	case errors.As(err, &store):
		httpx.Error(c, http.StatusInternalServerError, store.Error())
	default:
		httpx.Error(c, http.StatusInternalServerError, "internal error")
	}
}

func (s *Server) createUser(c *gin.Context) {
	var in struct {
		Username *string `json:"username"`
	}
	if err := c.ShouldBindJSON(&in); err != nil || in.Username == nil {
		httpx.Error(c, http.StatusBadRequest, "username is required")
		return
	}
	if *in.Username == "" {
		httpx.Error(c, http.StatusBadRequest, "username must be non-empty")
		return
	}
	u, err := s.svc.CreateUser(c.Request.Context(), *in.Username)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	httpx.JSON(c, http.StatusCreated, u)
}

func (s *Server) getUser(c *gin.Context) {
	raw, ok := c.GetQuery("user_id")
	if !ok {
		httpx.Error(c, http.StatusBadRequest, "user_id is required")
		return
	}
	userID, err := strconv.Atoi(raw)
	if err != nil {
		httpx.Error(c, http.StatusBadRequest, "parameter must be of type int")
		return
	}
	u, err := s.svc.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	httpx.JSON(c, http.StatusOK, u)
}

func (s *Server) addFavorite(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		httpx.Error(c, http.StatusBadRequest, "parameter must be of type int")
		return
	}
	var in struct {
		GameID *int `json:"game_id"`
	}
	if err := c.ShouldBindJSON(&in); err != nil || in.GameID == nil {
		httpx.Error(c, http.StatusBadRequest, "game_id is required")
		return
	}
	fg, err := s.svc.AddFavorite(c.Request.Context(), userID, *in.GameID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	httpx.JSON(c, http.StatusOK, fg)
}

func (s *Server) listFavorites(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		httpx.Error(c, http.StatusBadRequest, "parameter must be of type int")
		return
	}
	arr, err := s.svc.ListFavorites(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	httpx.JSON(c, http.StatusOK, arr)
}

// Start blocks serving HTTP until Shutdown or a listener error.
func (s *Server) Start(addr string) error {
	s.httpSrv = &http.Server{Addr: addr, Handler: s.Engine()}
	if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}
