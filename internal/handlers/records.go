package handlers

import (
	"log/slog"
	"net/http"

	"github.com/khollbach/minesweeper/internal/repository"
)

// Records lists won sessions ordered by playtime, optionally filtered
// by player and field dimensions.
func (g *GameHandler) Records(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseRecordsDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	records, err := g.repo.GetGameRecords(r.Context(), repository.GameRecordFilter{
		Username: dto.Username,
		Height:   dto.Height,
		Width:    dto.Width,
	})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("failed to fetch game records", slog.Any("error", err))
		return
	}

	sendJSONOrLog(w, g.logger, records)
}
