package command

import "fmt"

// Global is the application-wide command scope.
var Global = Target{}

// Target is the scope whose command set is replaced. The zero value is Global.
type Target struct {
	GuildID string
}

func Guild(guildID string) Target {
	return Target{GuildID: guildID}
}

func (t Target) IsGlobal() bool {
	return t.GuildID == ""
}

func (t Target) String() string {
	if t.IsGlobal() {
		return "GLOBAL"
	}
	return fmt.Sprintf("Guild %s", t.GuildID)
}
