package web

import (
	"errors"
	"io/fs"
	"net/http"
	"strconv"

	embedded "tourneyserver"
	"tourneyserver/internal/config"
	"tourneyserver/internal/domain"
	"tourneyserver/internal/service"
	"tourneyserver/internal/tournament"
	"tourneyserver/internal/web/webpath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html"
)

type Server struct {
	tournamentService *service.TournamentService
	app               *fiber.App
	cfg               config.Server
}

func New(ts *service.TournamentService, cfg config.Server) (*Server, error) {
	server := Server{
		tournamentService: ts,
		cfg:               cfg,
	}

	fsFS, err := fs.Sub(embedded.Views, "views")
	if err != nil {
		return nil, err
	}
	engine := html.NewFileSystem(http.FS(fsFS), ".html")
	engine.Reload(cfg.Debug)
	engine.Debug(cfg.Debug)

	app := fiber.New(fiber.Config{
		Views:        engine,
		ErrorHandler: errorHandler,
	})
	app.Get(webpath.Home, server.handleLeaderboard)
	app.Get(webpath.ApiHome, func(ctx *fiber.Ctx) error {
		return ctx.Redirect(webpath.Home)
	})

	app.Get(webpath.ApiPlayers, server.handleListPlayers)
	app.Post(webpath.ApiPlayers, server.handleNewPlayer)
	app.Post(webpath.ApiRename, server.handleRenamePlayer)
	app.Get(webpath.ApiPlayer, server.handleGetPlayer)
	app.Put(webpath.ApiPlayer, server.handleUpdatePlayer)
	app.Delete(webpath.ApiPlayer, server.handleRemovePlayer)

	app.Get(webpath.ApiGames, server.handleListGames)
	app.Post(webpath.ApiGames, server.handleNewGame)
	app.Put(webpath.ApiGame, server.handleSetGameWinner)
	app.Delete(webpath.ApiGame, server.handleDeleteGame)

	app.Post(webpath.ApiMatchup, server.handleMatchup)
	app.Get(webpath.ApiRank, server.handleRank)
	app.Get(webpath.ApiPropose, server.handlePropose)

	app.Get(webpath.ApiScoreConfig, server.handleGetScoreConfig)
	app.Put(webpath.ApiScoreConfig, server.handleSetScoreConfig)
	app.Get(webpath.ApiMatchConfig, server.handleGetMatchConfig)
	app.Put(webpath.ApiMatchConfig, server.handleSetMatchConfig)

	app.Post(webpath.ApiIngest, server.handleIngest)
	app.Get(webpath.ApiExport, server.handleExport)
	app.Post(webpath.ApiImport, server.handleImport)

	server.app = app
	return &server, nil
}

func (s *Server) Serve() error {
	return s.app.Listen(s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port))
}

func errorHandler(ctx *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return ctx.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
	}
	status := fiber.StatusInternalServerError
	var (
		invalidID     *domain.InvalidPlayerIDError
		notRegistered *domain.PlayerNotRegisteredError
		gameNotFound  *domain.GameNotFoundError
		already       *domain.PlayerAlreadyRegisteredError
		invalidName   *domain.InvalidPlayerNameError
		wrongWinner   *domain.WinnerNotInMatchError
	)
	switch {
	case errors.As(err, &invalidID),
		errors.As(err, &notRegistered),
		errors.As(err, &gameNotFound):
		status = fiber.StatusNotFound
	case errors.As(err, &already):
		status = fiber.StatusConflict
	case errors.As(err, &invalidName),
		errors.As(err, &wrongWinner),
		errors.Is(err, domain.ErrNotEnoughPlayers),
		errors.Is(err, ErrWrongWinner),
		errors.Is(err, ErrRepeatedPlayer):
		status = fiber.StatusBadRequest
	}
	return ctx.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func (s *Server) handleLeaderboard(ctx *fiber.Ctx) error {
	return ctx.Render("index", fiber.Map{
		"Title":   "Leaderboard",
		"Players": s.tournamentService.GetRatings(),
		"Path":    webpath.Path(),
	}, "layouts/main")
}

func (s *Server) handleListPlayers(ctx *fiber.Ctx) error {
	return ctx.JSON(s.tournamentService.GetRatings())
}

func (s *Server) handleNewPlayer(ctx *fiber.Ctx) error {
	var req createPlayer
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}
	player, err := s.tournamentService.RegisterPlayer(req.Name)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(player)
}

func (s *Server) handleRenamePlayer(ctx *fiber.Ctx) error {
	var req renamePlayer
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}
	return s.tournamentService.RenamePlayer(req.From, req.To)
}

func (s *Server) handleGetPlayer(ctx *fiber.Ctx) error {
	id, err := parsePlayerID(ctx)
	if err != nil {
		return err
	}
	player, err := s.tournamentService.GetPlayer(id)
	if err != nil {
		return err
	}
	return ctx.JSON(player)
}

func (s *Server) handleUpdatePlayer(ctx *fiber.Ctx) error {
	id, err := parsePlayerID(ctx)
	if err != nil {
		return err
	}
	var req updatePlayer
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}
	return s.tournamentService.SetPlayerInfo(id, req.convertToDomainInfo())
}

func (s *Server) handleRemovePlayer(ctx *fiber.Ctx) error {
	id, err := parsePlayerID(ctx)
	if err != nil {
		return err
	}
	return s.tournamentService.RemovePlayer(id)
}

func (s *Server) handleListGames(ctx *fiber.Ctx) error {
	return ctx.JSON(s.tournamentService.ListGames())
}

func (s *Server) handleNewGame(ctx *fiber.Ctx) error {
	var req createGame
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}
	if err := req.Validate(); err != nil {
		return err
	}
	rec, err := req.convertToDomainRecord()
	if err != nil {
		return err
	}
	if err := s.tournamentService.RegisterGame(rec); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusCreated)
}

func (s *Server) handleSetGameWinner(ctx *fiber.Ctx) error {
	index, err := ctx.ParamsInt("index")
	if err != nil {
		return fiber.ErrBadRequest
	}
	var req setWinner
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}
	return s.tournamentService.SetGameWinner(index, domain.PlayerID(req.Winner))
}

func (s *Server) handleDeleteGame(ctx *fiber.Ctx) error {
	index, err := ctx.ParamsInt("index")
	if err != nil {
		return fiber.ErrBadRequest
	}
	return s.tournamentService.DeleteGame(index)
}

func (s *Server) handleMatchup(ctx *fiber.Ctx) error {
	var req matchupRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}
	m, err := s.tournamentService.CreateMatch(req.convertToDomainIDs())
	if err != nil {
		return err
	}
	return ctx.JSON(m)
}

func (s *Server) handleRank(ctx *fiber.Ctx) error {
	strategy, id, err := parseStrategyAndID(ctx)
	if err != nil {
		return err
	}
	ranked, err := s.tournamentService.Rank(strategy, id)
	if err != nil {
		return err
	}
	return ctx.JSON(ranked)
}

func (s *Server) handlePropose(ctx *fiber.Ctx) error {
	strategy, id, err := parseStrategyAndID(ctx)
	if err != nil {
		return err
	}
	m, err := s.tournamentService.ProposeMatch(strategy, id)
	if err != nil {
		return err
	}
	return ctx.JSON(m)
}

func (s *Server) handleGetScoreConfig(ctx *fiber.Ctx) error {
	return ctx.JSON(s.tournamentService.ScoreConfig())
}

func (s *Server) handleSetScoreConfig(ctx *fiber.Ctx) error {
	var cfg domain.ScoreConfig
	if err := ctx.BodyParser(&cfg); err != nil {
		return fiber.ErrBadRequest
	}
	return s.tournamentService.SetScoreConfig(cfg)
}

func (s *Server) handleGetMatchConfig(ctx *fiber.Ctx) error {
	return ctx.JSON(s.tournamentService.MatchConfig())
}

func (s *Server) handleSetMatchConfig(ctx *fiber.Ctx) error {
	var cfg domain.MatchmakerConfig
	if err := ctx.BodyParser(&cfg); err != nil {
		return fiber.ErrBadRequest
	}
	return s.tournamentService.SetMatchConfig(cfg)
}

func (s *Server) handleIngest(ctx *fiber.Ctx) error {
	return s.tournamentService.IngestTSV(string(ctx.Body()))
}

func (s *Server) handleExport(ctx *fiber.Ctx) error {
	data, err := s.tournamentService.Export()
	if err != nil {
		return err
	}
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="tournament.json"`)
	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return ctx.Send(data)
}

func (s *Server) handleImport(ctx *fiber.Ctx) error {
	return s.tournamentService.Import(ctx.Body())
}

func parsePlayerID(ctx *fiber.Ctx) (domain.PlayerID, error) {
	id, err := ctx.ParamsInt("id")
	if err != nil || id < 0 {
		return 0, fiber.ErrBadRequest
	}
	return domain.PlayerID(id), nil
}

func parseStrategyAndID(ctx *fiber.Ctx) (tournament.Strategy, domain.PlayerID, error) {
	strategy, ok := tournament.ParseStrategy(ctx.Params("strategy"))
	if !ok {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "unknown ranking strategy")
	}
	id, err := parsePlayerID(ctx)
	if err != nil {
		return 0, 0, err
	}
	return strategy, id, nil
}
