package controller

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/jbeshir/article-board/internal/command"
	"github.com/jbeshir/article-board/internal/domain"
)

// VoteToggle likes or dislikes an article or comment, then sends the user
// back where they came from. Unknown entity kinds and actions change nothing.
type VoteToggle struct {
	Site    Site
	Toggler command.Command[command.ToggleVoteRequest, domain.VoteCounts]
}

func (c VoteToggle) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vars := mux.Vars(r)
	logger := domain.LoggerFromContext(ctx).With("obj_type", vars["obj_type"], "obj_id", vars["obj_id"])

	kind, kindOK := domain.ParseVotableKind(vars["obj_type"])
	polarity, actionOK := domain.ParseVoteAction(vars["action"])
	objID, err := strconv.ParseInt(vars["obj_id"], 10, 64)
	if !kindOK || !actionOK || err != nil {
		logger.DebugContext(ctx, "ignoring unrecognised vote", "action", vars["action"])
		redirectToReferrer(w, r)
		return
	}

	counts, err := c.Toggler.Execute(ctx, command.ToggleVoteRequest{
		UserID:   domain.UserIDFromContext(ctx),
		Ref:      domain.VotableRef{Kind: kind, ID: objID},
		Polarity: polarity,
	})
	if err != nil {
		c.Site.writeError(w, r, err)
		return
	}

	logger.DebugContext(ctx, "toggled vote", "likes", counts.Likes, "dislikes", counts.Dislikes)
	redirectToReferrer(w, r)
}
