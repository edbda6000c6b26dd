package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case []Player:
		o.printPlayers(v)
	case AuthResult:
		o.printAuthResult(v)
	case Balance:
		o.printBalance(v)
	case CurrentSkin:
		o.printCurrentSkin(v)
	case Ownership:
		o.printOwnership(v)
	case ScoreResult:
		o.printScoreResult(v)
	case []LeaderboardEntry:
		o.printLeaderboard(v)
	case Catalog:
		o.printCatalog(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID          int       `json:"id"`
	Username    string    `json:"username"`
	Birthdate   string    `json:"birthdate"`
	Stars       int       `json:"stars"`
	BestScore   int       `json:"best_score"`
	OwnedSkins  []int     `json:"owned_skins"`
	CurrentSkin int       `json:"current_skin"`
	CreatedAt   time.Time `json:"created_at"`
}

// AuthResult combines username and session token
type AuthResult struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}

// Balance response type
type Balance struct {
	Username string `json:"username"`
	Stars    int    `json:"stars"`
}

// CurrentSkin response type
type CurrentSkin struct {
	Username string `json:"username"`
	SkinID   int    `json:"skin_id"`
}

// Ownership response type
type Ownership struct {
	SkinID   int  `json:"skin_id"`
	Unlocked bool `json:"unlocked"`
}

// ScoreResult response type
type ScoreResult struct {
	Improved  bool `json:"improved"`
	BestScore int  `json:"best_score"`
}

// LeaderboardEntry response type
type LeaderboardEntry struct {
	Username  string `json:"username"`
	BestScore int    `json:"best_score"`
}

// Catalog maps skin ids to prices
type Catalog map[string]int

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s (#%d)\n", p.Username, p.ID)
	fmt.Printf("Birthdate: %s\n", p.Birthdate)
	fmt.Printf("Stars: %d\n", p.Stars)
	fmt.Printf("Best Score: %d\n", p.BestScore)
	fmt.Printf("Current Skin: %d\n", p.CurrentSkin)
	fmt.Printf("Owned Skins: %v\n", p.OwnedSkins)
}

func (o *Output) printPlayers(players []Player) {
	fmt.Printf("Players (%d):\n", len(players))
	for _, p := range players {
		fmt.Printf("  - %s (#%d): %d stars, best score %d\n", p.Username, p.ID, p.Stars, p.BestScore)
	}
}

func (o *Output) printAuthResult(a AuthResult) {
	fmt.Printf("Logged in as: %s\n", a.Username)
	fmt.Printf("Token: %s\n", a.Token)
}

func (o *Output) printBalance(b Balance) {
	fmt.Printf("%s: %d stars\n", b.Username, b.Stars)
}

func (o *Output) printCurrentSkin(c CurrentSkin) {
	fmt.Printf("%s has skin %d equipped\n", c.Username, c.SkinID)
}

func (o *Output) printOwnership(w Ownership) {
	if w.Unlocked {
		fmt.Printf("Skin %d: unlocked\n", w.SkinID)
	} else {
		fmt.Printf("Skin %d: locked\n", w.SkinID)
	}
}

func (o *Output) printScoreResult(s ScoreResult) {
	if s.Improved {
		fmt.Printf("New best score: %d\n", s.BestScore)
	} else {
		fmt.Printf("Best score unchanged: %d\n", s.BestScore)
	}
}

func (o *Output) printLeaderboard(entries []LeaderboardEntry) {
	fmt.Printf("Leaderboard (%d):\n", len(entries))
	for i, e := range entries {
		fmt.Printf("  %d. %s - %d\n", i+1, e.Username, e.BestScore)
	}
}

func (o *Output) printCatalog(c Catalog) {
	ids := make([]int, 0, len(c))
	for key := range c {
		id, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	sort.Ints(ids)

	fmt.Printf("Skins (%d):\n", len(ids))
	for _, id := range ids {
		price := c[strconv.Itoa(id)]
		if price == 0 {
			fmt.Printf("  %d: free\n", id)
		} else {
			fmt.Printf("  %d: %d stars\n", id, price)
		}
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
