package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/IlikeChooros/go-alphabeta/pkg/game"
	"github.com/IlikeChooros/go-alphabeta/pkg/render"
	"github.com/IlikeChooros/go-alphabeta/pkg/ttt"
)

const helpLine = "arrows/hjkl: move • enter/space: play • n: new game • q: quit"

type model struct {
	session  *game.Session
	renderer *render.Renderer
	delay    time.Duration
	cursor   ttt.Coord
	thinking bool
	status   string
	// Set when the engine could not find a move, ends the program
	fatal error
	log   *zap.SugaredLogger
}

// Computer's turn in the given game, delivered after the think delay
type computerMoveMsg struct {
	gameID uuid.UUID
}

func newModel(session *game.Session, renderer *render.Renderer, delay time.Duration, log *zap.SugaredLogger) model {
	m := model{
		session:  session,
		renderer: renderer,
		delay:    delay,
		cursor:   ttt.NewCoord(1, 1),
		log:      log,
	}
	m.thinking = session.Turn() == ttt.ComputerTurn
	return m
}

func thinkCmd(delay time.Duration, id uuid.UUID) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg {
			return computerMoveMsg{gameID: id}
		}
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return computerMoveMsg{gameID: id}
	})
}

func (m model) Init() tea.Cmd {
	if m.thinking {
		return thinkCmd(m.delay, m.session.ID())
	}
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.onKey(msg.String())

	case computerMoveMsg:
		// Stale tick from a game that has been replaced
		if msg.gameID != m.session.ID() || !m.thinking {
			return m, nil
		}

		m.thinking = false
		c, err := m.session.PlayComputer()
		if err != nil {
			m.fatal = err
			m.log.Errorw("computer failed to move", "game", m.session.ID(), "error", err)
			return m, tea.Quit
		}
		m.status = fmt.Sprintf("The computer played %s.", c)
	}
	return m, nil
}

func (m model) onKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "n":
		m.session.NewGame()
		m.status = ""
		m.thinking = m.session.Turn() == ttt.ComputerTurn
		if m.thinking {
			return m, thinkCmd(m.delay, m.session.ID())
		}
		return m, nil
	}

	if m.thinking || m.session.Over() {
		return m, nil
	}

	row, col := m.cursor.Row(), m.cursor.Col()
	switch key {
	case "up", "k":
		row = max(row-1, 0)
	case "down", "j":
		row = min(row+1, 2)
	case "left", "h":
		col = max(col-1, 0)
	case "right", "l":
		col = min(col+1, 2)
	case "enter", " ":
		return m.playCursor()
	}
	m.cursor = ttt.NewCoord(row, col)
	return m, nil
}

func (m model) playCursor() (tea.Model, tea.Cmd) {
	err := m.session.PlayOpponent(m.cursor)
	switch {
	case errors.Is(err, ttt.ErrOccupied):
		m.status = "That square is already taken."
		return m, nil
	case err != nil:
		m.status = err.Error()
		return m, nil
	}

	m.status = ""
	if m.session.Over() {
		return m, nil
	}
	m.thinking = true
	return m, thinkCmd(m.delay, m.session.ID())
}

func (m model) View() string {
	var sb strings.Builder

	cursor := m.cursor
	if m.thinking || m.session.Over() {
		cursor = ttt.CoordIllegal
	}
	sb.WriteString(m.renderer.Board(m.session.Board(), m.session.Evaluation(), cursor))
	sb.WriteString("\n")

	switch {
	case m.fatal != nil:
		fmt.Fprintf(&sb, "Error: %v\n", m.fatal)
	case m.session.Over():
		if m.status != "" {
			sb.WriteString(m.status + "\n")
		}
		sb.WriteString(m.renderer.Outcome(m.session.Outcome()) + "\n")
	case m.thinking:
		sb.WriteString("The computer is thinking...\n")
	default:
		if m.status != "" {
			sb.WriteString(m.status + "\n")
		}
		fmt.Fprintf(&sb, "Your move (%s), cursor on %s.\n", m.renderer.OpponentPiece(), m.cursor)
	}

	sb.WriteString("\n" + helpLine + "\n")
	return sb.String()
}
