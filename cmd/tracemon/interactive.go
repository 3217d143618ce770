package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/embtrace/tracebuf/record"
	"github.com/embtrace/tracebuf/timestamp"
	"github.com/embtrace/tracebuf/wire"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#005F87")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	offStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	sentinelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#444444"))

	fmtWordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type monitorModel struct {
	eng      *record.Engine
	cfg      record.Config
	work     *workload
	view     viewport.Model
	outFile  string
	status   string
	paused   bool
	ready    bool
	steps    uint32
	messages uint64
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func newMonitorModel(eng *record.Engine, cfg record.Config, outFile string) *monitorModel {
	return &monitorModel{
		eng:     eng,
		cfg:     cfg,
		work:    newWorkload(cfg),
		outFile: outFile,
	}
}

func (m *monitorModel) Init() tea.Cmd {
	return tick()
}

func (m *monitorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case " ":
			if m.paused {
				m.eng.RestoreFilter()
				m.status = "logging resumed"
			} else {
				m.eng.SetFilter(0)
				m.status = "logging suspended"
			}
			m.paused = !m.paused

		case "r":
			if err := m.eng.Init(record.EnableAll, record.ModeRestart); err != nil {
				m.status = "restart failed: " + err.Error()
			} else {
				m.status = "buffer erased, logging restarted"
				m.paused = false
				m.messages = 0
			}

		case "s":
			m.status = m.saveSnapshot()

		case "1", "2", "3", "4", "5", "6", "7":
			group := uint32(msg.String()[0] - '0')
			mask := m.eng.Filter() ^ (1 << (31 - group))
			m.eng.SetFilter(mask)
			m.status = fmt.Sprintf("filter group %d toggled", group)

		case "up", "k":
			m.view.LineUp(1)

		case "down", "j":
			m.view.LineDown(1)
		}

	case tea.WindowSizeMsg:
		headerHeight := 9
		m.view = viewport.New(msg.Width, msg.Height-headerHeight)
		m.ready = true

	case tickMsg:
		if !m.paused {
			m.work.step(m.eng, m.steps)
			m.steps++
			m.messages++
		}
		if m.ready {
			m.view.SetContent(m.hexDump())
		}
		return m, tick()
	}

	return m, nil
}

func (m *monitorModel) saveSnapshot() string {
	restore := !m.paused
	if restore {
		m.eng.SetFilter(0)
	}
	data, err := m.eng.MarshalBinary()
	if restore {
		m.eng.RestoreFilter()
	}
	if err != nil {
		return "snapshot failed: " + err.Error()
	}
	if err := os.WriteFile(m.outFile, data, 0o644); err != nil {
		return "snapshot failed: " + err.Error()
	}
	return fmt.Sprintf("snapshot saved to %s (%d bytes)", m.outFile, len(data))
}

func (m *monitorModel) hexDump() string {
	words := m.eng.Words()
	var b strings.Builder
	for i := 0; i < len(words); i += 8 {
		fmt.Fprintf(&b, "%06x  ", i)
		for j := i; j < i+8 && j < len(words); j++ {
			cell := fmt.Sprintf("%08x ", words[j])
			switch {
			case words[j] == wire.Sentinel:
				b.WriteString(sentinelStyle.Render(cell))
			case wire.Terminal(words[j]):
				b.WriteString(fmtWordStyle.Render(cell))
			default:
				b.WriteString(cell)
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *monitorModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("tracebuf monitor"))
	b.WriteString("\n\n")

	filter := m.eng.Filter()
	filterText := valueStyle.Render(fmt.Sprintf("%08x", filter))
	if filter == 0 {
		filterText = offStyle.Render("00000000 (off)")
	}
	fmt.Fprintf(&b, "%s %d words   %s %d   %s %s   %s %d Hz\n",
		labelStyle.Render("buffer"), m.cfg.BufferWords,
		labelStyle.Render("write index"), m.eng.WriteIndex(),
		labelStyle.Render("filter"), filterText,
		labelStyle.Render("timestamps"), m.eng.Frequency())
	fmt.Fprintf(&b, "%s %08x   %s %d\n",
		labelStyle.Render("fingerprint"), m.eng.ConfigWord(),
		labelStyle.Render("messages"), m.messages)
	if m.status != "" {
		b.WriteString(m.status)
	}
	b.WriteString("\n\n")

	if m.ready {
		b.WriteString(m.view.View())
	} else {
		b.WriteString("...")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("space pause • 1-7 toggle groups • r restart • s snapshot • ↑/↓ scroll • q quit"))
	return b.String()
}

func runInteractive(cfg record.Config, mode record.Mode, outFile string) error {
	eng, err := record.New(cfg, timestamp.NewMonotonic())
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}
	if err := eng.Init(record.EnableAll, mode); err != nil {
		return fmt.Errorf("init: %w", err)
	}

	p := tea.NewProgram(newMonitorModel(eng, cfg, outFile), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
