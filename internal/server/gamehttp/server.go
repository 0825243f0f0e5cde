package gamehttp

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	gin "github.com/gin-gonic/gin"

	"github.com/gameshelf/gameshelf/internal/pagination"
	"github.com/gameshelf/gameshelf/internal/server/httpx"
	gamesvc "github.com/gameshelf/gameshelf/internal/service/games"
)

// Server exposes the game catalog over HTTP.
type Server struct {
	svc       *gamesvc.Service
	startedAt time.Time
	httpSrv   *http.Server
}

func New(svc *gamesvc.Service) *Server {
	return &Server{svc: svc, startedAt: time.Now()}
}

func (s *Server) Engine() *gin.Engine {
	r := gin.New()
	r.Use(httpx.RequestID(), httpx.CORS(), httpx.Logger(), gin.Recovery())
	r.GET("/games", s.listGames)
	r.GET("/games/:id", s.getGame)
	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/metrics", httpx.Metrics("game_service", s.startedAt))
	return r
}

func (s *Server) listGames(c *gin.Context) {
	page, err1 := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, err2 := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err1 != nil || err2 != nil || page < 1 || limit < 1 {
		httpx.Error(c, http.StatusUnprocessableEntity, "Invalid pagination parameters")
		return
	}

	all, err := s.svc.List(c.Request.Context(), c.Query("name"))
	if err != nil {
		var nm *gamesvc.NoMatchError
		if errors.As(err, &nm) {
			httpx.Error(c, http.StatusNotFound, nm.Error())
			return
		}
		httpx.Error(c, http.StatusInternalServerError, "Failed to list games")
		return
	}

	pageItems, err := pagination.Paginate(all, page, limit)
	if err != nil {
		var ip *pagination.InvalidParamsError
		if errors.As(err, &ip) {
			httpx.Error(c, http.StatusUnprocessableEntity, ip.Error())
			return
		}
		httpx.Error(c, http.StatusNotFound, "No games found for the given page")
		return
	}

	httpx.JSON(c, http.StatusOK, gin.H{
		"page":  page,
		"limit": limit,
		"total": len(all),
		"games": pageItems,
	})
}

func (s *Server) getGame(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httpx.Error(c, http.StatusBadRequest, "parameter must be of type int")
		return
	}
	g, err := s.svc.Get(c.Request.Context(), id)
	if err != nil {
		var nf *gamesvc.NotFoundError
		if errors.As(err, &nf) {
			httpx.Error(c, http.StatusNotFound, nf.Error())
			return
		}
		httpx.Error(c, http.StatusInternalServerError, "Failed to fetch game")
		return
	}
	httpx.JSON(c, http.StatusOK, g)
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
