// Command step502 is an interactive single-stepping host for the cpu
// package: it loads a raw binary into RAM, wires up a reset vector, and
// lets a user step the machine one instruction at a time while watching
// registers, flags, and fixed 16-byte rows of memory (zero page, the first
// 48 bytes at the load offset, and $FFF0-$FFFF), with the byte at the
// program counter highlighted when it is in one of those rows.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"sixty502/cpu"
	"sixty502/mem"
)

func main() {
	path := flag.String("program", "", "path to a raw binary to load")
	offset := flag.Uint("offset", 0x8000, "address to load the program at")
	flag.Parse()

	if *path == "" {
		fmt.Fprintln(os.Stderr, "step502: -program is required")
		os.Exit(1)
	}

	program, err := os.ReadFile(*path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "step502:", err)
		os.Exit(1)
	}

	var ram mem.RAM
	ram.Load(uint16(*offset), program)
	ram.Load(0xFFFC, []byte{byte(*offset), byte(*offset >> 8)})

	c := cpu.New()
	c.SetBus(&ram)
	if err := c.Reset(); err != nil {
		fmt.Fprintln(os.Stderr, "step502:", err)
		os.Exit(1)
	}

	m, err := tea.NewProgram(model{cpu: c, ram: &ram, offset: uint16(*offset)}).Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "step502:", err)
		os.Exit(1)
	}
	if x := m.(model); x.lastErr != nil {
		fmt.Fprintln(os.Stderr, "step502: halted:", x.lastErr)
		os.Exit(1)
	}
}

type model struct {
	cpu    *cpu.CPU
	ram    *mem.RAM
	offset uint16

	prevPC  uint16
	lastErr error
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "j":
			m.prevPC = m.cpu.GetPC()
			if err := m.cpu.Step(); err != nil {
				m.lastErr = err
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m model) renderPage(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i := 0; i < 16; i++ {
		b := m.ram[int(start)+i]
		if start+uint16(i) == m.cpu.GetPC() {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m model) pageTable() string {
	header := "page | "
	for b := 0; b < 16; b++ {
		header += fmt.Sprintf("  %01x  ", b)
	}
	lines := []string{header}
	for _, p := range []uint16{0, m.offset, m.offset + 16, m.offset + 32, 0xFFF0} {
		lines = append(lines, m.renderPage(p))
	}
	return strings.Join(lines, "\n")
}

func (m model) status() string {
	return fmt.Sprintf(`
PC: %04x (was %04x)
 A: %02x
 X: %02x
 Y: %02x
SP: %02x
 P: %s
`,
		m.cpu.GetPC(), m.prevPC,
		m.cpu.GetA(), m.cpu.GetX(), m.cpu.GetY(), m.cpu.GetSP(),
		m.cpu.StatusString(),
	)
}

func (m model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, m.pageTable(), m.status()),
		"",
		m.cpu.Line(),
		spew.Sdump(m.lastErr),
	)
}
