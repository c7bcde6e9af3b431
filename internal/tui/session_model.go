package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/louisbranch/storypoints/internal/estimation/domain"
	"github.com/louisbranch/storypoints/internal/estimation/service"
)

// mode is the current input mode of the session console.
type mode int

const (
	modeBoard mode = iota
	modeAddItem
	modeAddParticipant
	modeCompletePoints
)

// tickMsg is sent once per second while the round timer runs. The model is
// the scheduling collaborator: the engine only applies the tick.
type tickMsg struct{}

// SessionModel is the TUI model for driving one estimation session. The
// facilitator enters items and participants and records the votes called
// out in the room.
type SessionModel struct {
	engine       *service.Engine
	timerSeconds int

	width  int
	height int

	mode     mode
	input    textinput.Model
	revealed bool
	status   string

	participantCursor int
	cardCursor        int
}

// NewSessionModel creates the session console around a prepared engine.
func NewSessionModel(engine *service.Engine, timerSeconds int) SessionModel {
	input := textinput.New()
	input.CharLimit = 80
	input.Width = 40

	return SessionModel{
		engine:       engine,
		timerSeconds: timerSeconds,
		input:        input,
	}
}

// Init implements tea.Model.
func (m SessionModel) Init() tea.Cmd {
	return nil
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

// Update implements tea.Model.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.engine.TickTimer()
		if m.engine.IsTimerActive() {
			return m, tickCmd()
		}
		// Timer expiry does not end the round inside the engine; that call
		// belongs to the observing collaborator, which is this model.
		if m.engine.IsVotingActive() && m.engine.TimerSecondsLeft() == 0 {
			m.engine.EndVotingRound()
			m.revealed = true
			m.status = "time is up, round archived"
		}
		return m, nil

	case tea.KeyMsg:
		if m.mode != modeBoard {
			return m.updateInput(msg)
		}
		return m.updateBoard(msg)
	}

	return m, nil
}

func (m SessionModel) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "a":
		return m.enterInput(modeAddItem, "review item name"), nil

	case "p":
		return m.enterInput(modeAddParticipant, "participant name"), nil

	case "x":
		if _, ok := m.engine.CurrentReviewItem(); !ok {
			m.status = "no current item to complete"
			return m, nil
		}
		return m.enterInput(modeCompletePoints, "final points"), nil

	case "v":
		item, ok := m.engine.CurrentReviewItem()
		if !ok {
			m.status = "add a review item first"
			return m, nil
		}
		outcome, err := m.engine.StartVotingRound(item.ID, m.timerSeconds)
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		if !outcome.Applied {
			m.status = "cannot start round: " + string(outcome.Reason)
			return m, nil
		}
		m.revealed = false
		m.status = fmt.Sprintf("voting on %q", item.Name)
		return m, tickCmd()

	case "r":
		m.engine.RevealVotes()
		m.revealed = true
		return m, nil

	case "e":
		if outcome := m.engine.EndVotingRound(); outcome.Applied {
			m.revealed = true
			m.status = "round archived"
		}
		return m, nil

	case "tab", "down":
		if voters := m.voters(); len(voters) > 0 {
			m.participantCursor = (m.participantCursor + 1) % len(voters)
		}
		return m, nil

	case "shift+tab", "up":
		if voters := m.voters(); len(voters) > 0 {
			m.participantCursor = (m.participantCursor - 1 + len(voters)) % len(voters)
		}
		return m, nil

	case "left":
		if deck := m.engine.Config().Deck; len(deck) > 0 {
			m.cardCursor = (m.cardCursor - 1 + len(deck)) % len(deck)
		}
		return m, nil

	case "right":
		if deck := m.engine.Config().Deck; len(deck) > 0 {
			m.cardCursor = (m.cardCursor + 1) % len(deck)
		}
		return m, nil

	case "enter":
		return m.recordVote(), nil

	case "c":
		if voter, ok := m.selectedVoter(); ok {
			if m.engine.ClearVote(voter.ID).Applied {
				m.status = voter.Name + " vote cleared"
			}
		}
		return m, nil

	case "h":
		m.engine.ClearVotingHistory()
		m.status = "history cleared"
		return m, nil
	}

	return m, nil
}

func (m SessionModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBoard
		m.input.Blur()
		return m, nil

	case "enter":
		value := strings.TrimSpace(m.input.Value())
		m = m.applyInput(value)
		m.mode = modeBoard
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m SessionModel) applyInput(value string) SessionModel {
	if value == "" {
		return m
	}
	switch m.mode {
	case modeAddItem:
		if _, err := m.engine.AddReviewItem(value); err != nil {
			m.status = err.Error()
			return m
		}
		m.status = fmt.Sprintf("added %q", value)

	case modeAddParticipant:
		if _, err := m.engine.AddParticipant(value, domain.RoleParticipant); err != nil {
			m.status = err.Error()
			return m
		}
		m.status = value + " joined"

	case modeCompletePoints:
		points, err := strconv.ParseFloat(value, 64)
		if err != nil {
			m.status = "final points must be a number"
			return m
		}
		if m.engine.IsVotingActive() {
			m.engine.EndVotingRound()
		}
		if m.engine.CompleteCurrentItem(points).Applied {
			m.revealed = false
			m.status = fmt.Sprintf("item completed at %s points", value)
		}
	}
	return m
}

func (m SessionModel) enterInput(target mode, placeholder string) SessionModel {
	m.mode = target
	m.input.Placeholder = placeholder
	m.input.SetValue("")
	m.input.Focus()
	return m
}

// voters returns the roster entries votes can be recorded for.
func (m SessionModel) voters() []domain.Participant {
	voters := make([]domain.Participant, 0)
	for _, p := range m.engine.Participants() {
		if p.Role == domain.RoleParticipant {
			voters = append(voters, p)
		}
	}
	return voters
}

func (m SessionModel) selectedVoter() (domain.Participant, bool) {
	voters := m.voters()
	if len(voters) == 0 || m.participantCursor >= len(voters) {
		return domain.Participant{}, false
	}
	return voters[m.participantCursor], true
}

func (m SessionModel) recordVote() SessionModel {
	voter, ok := m.selectedVoter()
	if !ok {
		m.status = "no participant selected"
		return m
	}
	deck := m.engine.Config().Deck
	if len(deck) == 0 || m.cardCursor >= len(deck) {
		return m
	}

	if _, already := m.voteOf(voter.ID); already && !m.engine.Config().AllowRevoting {
		m.status = voter.Name + " already voted (revoting disabled)"
		return m
	}

	card := deck[m.cardCursor]
	outcome := m.engine.SubmitVote(voter.ID, card.Value)
	if !outcome.Applied {
		m.status = "no active round: " + string(outcome.Reason)
		return m
	}
	m.status = fmt.Sprintf("%s voted %s", voter.Name, card.Label)
	return m
}

func (m SessionModel) voteOf(participantID string) (domain.Vote, bool) {
	for _, vote := range m.engine.CurrentRoundVotes() {
		if vote.ParticipantID == participantID {
			return vote, true
		}
	}
	return domain.Vote{}, false
}

// View implements tea.Model.
func (m SessionModel) View() string {
	if m.width == 0 {
		return "loading..."
	}

	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true).
		Render("storypoints")

	sections := []string{
		title,
		m.viewQueue(),
		m.viewRoster(),
		m.viewRound(),
	}

	if m.mode != modeBoard {
		label := map[mode]string{
			modeAddItem:        "new review item",
			modeAddParticipant: "new participant",
			modeCompletePoints: "final points",
		}[m.mode]
		sections = append(sections, lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorPrimaryText)).
			Render(label+": ")+m.input.View())
	}

	if m.status != "" {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Render(m.status))
	}

	help := "a add item · p add participant · v vote · enter record · r reveal · e end · x complete · h clear history · q quit"
	sections = append(sections, lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Render(help))

	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(sections, "\n\n"))
}

func (m SessionModel) viewQueue() string {
	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Bold(true).
		Render("Queue")

	items := m.engine.RemainingReviewItems()
	if len(items) == 0 {
		return header + "\n" + lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDisabledText)).
			Render("  no review items")
	}

	lines := make([]string, 0, len(items))
	for _, item := range items {
		marker := "  "
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
		if item.IsCurrent {
			marker = "> "
			style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Bold(true)
		}
		lines = append(lines, style.Render(marker+item.Name))
	}
	return header + "\n" + strings.Join(lines, "\n")
}

func (m SessionModel) viewRoster() string {
	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Bold(true).
		Render("Participants")

	voters := m.voters()
	if len(voters) == 0 {
		return header + "\n" + lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDisabledText)).
			Render("  nobody has joined")
	}

	lines := make([]string, 0, len(voters))
	for i, p := range voters {
		marker := "  "
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
		if i == m.participantCursor {
			marker = "> "
			style = style.Foreground(lipgloss.Color(ColorPrimaryText)).Bold(true)
		}
		line := marker + p.Name
		if p.HasVoted {
			line += " " + lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorSuccess)).
				Render("✓")
		}
		lines = append(lines, style.Render(line))
	}

	progress := m.engine.VotingProgress()
	lines = append(lines, lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Render(fmt.Sprintf("  %d/%d voted (%d%%)",
			progress.VotedCount, progress.TotalParticipants, progress.Percentage)))

	return header + "\n" + strings.Join(lines, "\n")
}

func (m SessionModel) viewRound() string {
	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Bold(true).
		Render("Round")

	lines := []string{m.viewDeck()}

	if m.engine.IsVotingActive() {
		left := m.engine.TimerSecondsLeft()
		timerColor := ColorAccentMain
		if left <= 10 {
			timerColor = ColorWarning
		}
		lines = append(lines, lipgloss.NewStyle().
			Foreground(lipgloss.Color(timerColor)).
			Render(fmt.Sprintf("  %02d:%02d remaining", left/60, left%60)))
		lines = append(lines, lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Render(fmt.Sprintf("  %d votes in", m.engine.VoteCount())))
	}

	if m.revealed {
		lines = append(lines, m.viewSummary())
	}

	if history := m.engine.VotingHistory(); len(history) > 0 {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDisabledText)).
			Render(fmt.Sprintf("  %d archived round(s)", len(history))))
	}

	return header + "\n" + strings.Join(lines, "\n")
}

func (m SessionModel) viewDeck() string {
	deck := m.engine.Config().Deck
	cards := make([]string, 0, len(deck))
	for i, card := range deck {
		style := lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(ColorBorder)).
			Foreground(lipgloss.Color(ColorSecondaryText))
		if i == m.cardCursor {
			style = style.
				BorderForeground(lipgloss.Color(ColorAccentMain)).
				Foreground(lipgloss.Color(ColorAccentBright)).
				Bold(true)
		}
		cards = append(cards, style.Render(card.Label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, cards...)
}

// viewSummary renders the vote histogram of the round being revealed: the
// current round while voting, otherwise the most recently archived one.
func (m SessionModel) viewSummary() string {
	summary := m.engine.VoteSummary()
	if len(summary) == 0 {
		if history := m.engine.VotingHistory(); len(history) > 0 {
			summary = history[len(history)-1].Summary()
		}
	}
	if len(summary) == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDisabledText)).
			Render("  no votes cast")
	}

	deck := m.engine.Config().Deck
	parts := make([]string, 0, len(summary))
	for _, card := range deck {
		if count, ok := summary[card.Value]; ok {
			parts = append(parts, fmt.Sprintf("%s×%d", card.Label, count))
		}
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSuccess)).
		Render("  votes: " + strings.Join(parts, "  "))
}
