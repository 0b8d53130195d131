package webpath

const (
	Home = "/"

	Api            = "/api"
	ApiHome        = Api + Home
	ApiPlayers     = Api + "/players"
	ApiRename      = Api + "/players/rename"
	ApiPlayer      = Api + "/players/:id"
	ApiGames       = Api + "/games"
	ApiGame        = Api + "/games/:index"
	ApiMatchup     = Api + "/matchup"
	ApiRank        = Api + "/rank/:strategy/:id"
	ApiPropose     = Api + "/propose/:strategy/:id"
	ApiScoreConfig = Api + "/config/score"
	ApiMatchConfig = Api + "/config/match"
	ApiIngest      = Api + "/ingest"
	ApiExport      = Api + "/export"
	ApiImport      = Api + "/import"
)

func Path() map[string]string {
	return map[string]string{
		"Home":       Home,
		"Api":        Api,
		"ApiHome":    ApiHome,
		"ApiPlayers": ApiPlayers,
		"ApiGames":   ApiGames,
		"ApiMatchup": ApiMatchup,
		"ApiExport":  ApiExport,
	}
}
