package app

import (
	"bufio"
	"fmt"
	"os"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/stillpoint/internal/session"
	"github.com/ayoisaiah/stillpoint/store"
)

// delSessions deletes all the specified sessions. It requests for
// confirmation before proceeding with the operation.
func delSessions(
	db store.DB,
	sessions []session.Record,
) error {
	if len(sessions) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return nil
	}

	ids := make([]string, len(sessions))

	for i := range sessions {
		ids[i] = sessions[i].ID
	}

	printSessionsTable(os.Stdout, sessions)

	warning := pterm.Warning.Sprint(
		"The above sessions will be deleted permanently. Press ENTER to proceed",
	)

	fmt.Fprint(os.Stdout, warning)

	reader := bufio.NewReader(os.Stdin)

	_, _ = reader.ReadString('\n')

	return db.DeleteSessions(ids)
}
