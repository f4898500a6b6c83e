package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/crawler/internal/entity"
	"github.com/samdwyer/crawler/internal/game"
	"github.com/samdwyer/crawler/internal/world"
)

// Version is shown under the title banner.
var Version = "0.1.0"

const (
	promptPrefix = "> "
	panelGap     = 2
)

var titleBanner = []string{
	` ____  _   _ ____ _______   __`,
	`|  _ \| | | / ___|_   _\ \ / /`,
	`| |_) | | | \___ \ | |  \ V / `,
	`|  _ <| |_| |___) || |   | |  `,
	`|_| \_\\___/|____/ |_|   |_|  `,
}

var (
	textStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dimStyle     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	titleStyle   = tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true)
	headingStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	playerStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	messageStyle = tcell.StyleDefault.Foreground(tcell.ColorAqua)
)

// Renderer handles drawing the session to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the menu or the active game, the last message and the
// input prompt holding the current partial line.
func (r *Renderer) Render(s *game.Session, last game.Outcome, input string) {
	r.screen.Reset()

	if g := s.Game(); g != nil {
		r.renderGame(g)
	} else {
		r.renderMenu()
	}

	_, height := r.screen.Size()
	r.screen.Text(0, height-2, Message(last), messageStyle)
	r.RenderPrompt(input)
}

// RenderPrompt redraws only the input line.
func (r *Renderer) RenderPrompt(input string) {
	_, height := r.screen.Size()
	y := height - 1
	r.screen.ClearRow(y, textStyle)
	end := r.screen.Text(0, y, promptPrefix+input, textStyle)
	r.screen.Cursor(end, y)
	r.screen.Flush()
}

// renderMenu draws the boxed title screen with the three menu options.
func (r *Renderer) renderMenu() {
	width, height := r.screen.Size()
	boxHeight := height - 2 // Message and prompt rows stay outside the box
	r.drawBox(0, 0, width, boxHeight)

	lines := len(titleBanner) + 6
	y := max((boxHeight-lines)/2, 1)
	for _, line := range titleBanner {
		r.drawCentered(y, line, titleStyle)
		y++
	}
	r.drawCentered(y, "C R A W L E R", titleStyle)
	r.drawCentered(y+1, "v"+Version, dimStyle)
	y += 3
	for _, option := range []string{"1. New Game", "2. Load Game", "3. Exit"} {
		r.drawCentered(y, option, textStyle)
		y++
	}
}

// renderGame draws the map with the player in its room and the stats panel.
func (r *Renderer) renderGame(g *game.Game) {
	m := g.Map
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			tile, _ := m.Tile(x, y)
			r.screen.Put(x, y, tile.Rune(), r.getTileStyle(tile))
		}
	}
	if room, ok := m.Room(0); ok {
		px, py := room.Center()
		if m.InBounds(px, py) {
			r.screen.Put(px, py, '@', playerStyle)
		}
	}

	r.renderPanel(m.Width+panelGap, g)
}

func (r *Renderer) renderPanel(x int, g *game.Game) {
	stats := g.Player.Stats()
	y := 0
	line := func(text string, style tcell.Style) {
		r.screen.Text(x, y, text, style)
		y++
	}

	line(stats.Name, headingStyle)
	line(fmt.Sprintf("Level %d  XP %d/%d", stats.Level, stats.Experience, stats.ExperienceToNextLevel), textStyle)
	line(fmt.Sprintf("HP  %d", stats.Health), textStyle)
	line(fmt.Sprintf("ATK %d  DEF %d  SPD %d", stats.Attack, stats.Defense, stats.Speed), textStyle)
	line(fmt.Sprintf("Turn %d (%s)", g.Turn(), g.State()), dimStyle)
	y++
	line("Weapon: "+slotName(stats.Weapon), textStyle)
	line("Armor:  "+slotName(stats.Armor), textStyle)
	y++
	line("Inventory", headingStyle)
	if len(stats.Inventory) == 0 {
		line("  (empty)", dimStyle)
	}
	for i, entry := range stats.Inventory {
		line(fmt.Sprintf("%2d. %s", i+1, itemLabel(entry.Item)), kindStyle(entry.Item.Kind))
	}
	y++
	line("e N equip  u N use", dimStyle)
	line("p pause  q menu  enter wait", dimStyle)
}

func slotName(item *entity.Item) string {
	if item == nil {
		return "-"
	}
	return itemLabel(*item)
}

func itemLabel(item entity.Item) string {
	switch item.Kind {
	case entity.KindWeapon:
		return fmt.Sprintf("%s (+%d atk)", item.Name, item.Value)
	case entity.KindArmor:
		return fmt.Sprintf("%s (+%d def)", item.Name, item.Value)
	case entity.KindPotion:
		return fmt.Sprintf("%s (+%d hp)", item.Name, item.Value)
	default:
		return item.Name
	}
}

// kindStyle returns the inventory color for an item kind.
func kindStyle(kind entity.Kind) tcell.Style {
	switch kind {
	case entity.KindWeapon:
		return tcell.StyleDefault.Foreground(tcell.ColorRed)
	case entity.KindArmor:
		return tcell.StyleDefault.Foreground(tcell.ColorSteelBlue)
	case entity.KindPotion:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorGold)
	}
}

// getTileStyle returns the appropriate style for a tile type.
func (r *Renderer) getTileStyle(tile world.Tile) tcell.Style {
	switch tile {
	case world.TileWall:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case world.TileFloor:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	case world.TileDoor:
		return tcell.StyleDefault.Foreground(tcell.ColorSaddleBrown)
	default:
		return tcell.StyleDefault
	}
}

// drawBox draws a single-line border around the given rectangle.
func (r *Renderer) drawBox(x, y, width, height int) {
	if width < 2 || height < 2 {
		return
	}
	right, bottom := x+width-1, y+height-1
	for cx := x + 1; cx < right; cx++ {
		r.screen.Put(cx, y, tcell.RuneHLine, dimStyle)
		r.screen.Put(cx, bottom, tcell.RuneHLine, dimStyle)
	}
	for cy := y + 1; cy < bottom; cy++ {
		r.screen.Put(x, cy, tcell.RuneVLine, dimStyle)
		r.screen.Put(right, cy, tcell.RuneVLine, dimStyle)
	}
	r.screen.Put(x, y, tcell.RuneULCorner, dimStyle)
	r.screen.Put(right, y, tcell.RuneURCorner, dimStyle)
	r.screen.Put(x, bottom, tcell.RuneLLCorner, dimStyle)
	r.screen.Put(right, bottom, tcell.RuneLRCorner, dimStyle)
}

// drawCentered draws text centered on the given row.
func (r *Renderer) drawCentered(y int, text string, style tcell.Style) {
	width, _ := r.screen.Size()
	x := max((width-len([]rune(text)))/2, 0)
	r.screen.Text(x, y, text, style)
}
