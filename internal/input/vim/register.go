package vim

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode"
)

// Register errors.
var (
	// ErrUnknownRegister indicates a register name the store does not hold.
	ErrUnknownRegister = errors.New("unknown register")

	// ErrReadOnlyRegister indicates a write to a read-only register.
	ErrReadOnlyRegister = errors.New("register is read-only")
)

// RegisterType categorizes registers by their behavior.
type RegisterType uint8

const (
	// RegisterUnnamed is the default register (").
	RegisterUnnamed RegisterType = iota

	// RegisterNamed is a named register (a-z, A-Z).
	RegisterNamed

	// RegisterLastYank is the yank register (0).
	RegisterLastYank

	// RegisterNumbered is a numbered register (1-9).
	RegisterNumbered

	// RegisterSmallDelete is the small delete register (-).
	RegisterSmallDelete

	// RegisterBlackHole is the black hole register (_).
	RegisterBlackHole

	// RegisterLastInserted is the last inserted text register (.).
	RegisterLastInserted

	// RegisterClipboard is the system clipboard register (+).
	RegisterClipboard

	// RegisterSelection is the primary selection register (*).
	RegisterSelection
)

// Register represents a named storage location for text.
type Register struct {
	// Name is the register character.
	Name rune

	// Type categorizes the register.
	Type RegisterType

	// Content holds the register's text content. Linewise content always
	// ends with a newline.
	Content string

	// Linewise indicates if the content is line-oriented.
	Linewise bool

	// ReadOnly indicates if the register is read-only.
	ReadOnly bool
}

// ClipboardProvider abstracts system clipboard access.
type ClipboardProvider interface {
	// Get returns the current clipboard content.
	Get() (string, error)

	// Set sets the clipboard content.
	Set(content string) error
}

// RegisterStore manages all registers.
type RegisterStore struct {
	mu        sync.RWMutex
	registers map[rune]*Register

	// numbered are 1-9, rotating delete history.
	numbered [9]*Register

	// clipboard provides system clipboard access.
	clipboard ClipboardProvider
}

// NewRegisterStore creates a new register store.
func NewRegisterStore() *RegisterStore {
	rs := &RegisterStore{
		registers: make(map[rune]*Register),
	}
	rs.initializeRegisters()
	return rs
}

// SetClipboard sets the clipboard provider for the + and * registers.
// Without one they behave like ordinary registers.
func (rs *RegisterStore) SetClipboard(clipboard ClipboardProvider) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.clipboard = clipboard
}

func (rs *RegisterStore) initializeRegisters() {
	rs.registers['"'] = &Register{Name: '"', Type: RegisterUnnamed}

	for r := 'a'; r <= 'z'; r++ {
		rs.registers[r] = &Register{Name: r, Type: RegisterNamed}
	}

	rs.registers['0'] = &Register{Name: '0', Type: RegisterLastYank}
	for i := 1; i <= 9; i++ {
		r := rune('0' + i)
		rs.registers[r] = &Register{Name: r, Type: RegisterNumbered}
		rs.numbered[i-1] = rs.registers[r]
	}

	rs.registers['-'] = &Register{Name: '-', Type: RegisterSmallDelete}
	rs.registers['_'] = &Register{Name: '_', Type: RegisterBlackHole}
	rs.registers['.'] = &Register{Name: '.', Type: RegisterLastInserted, ReadOnly: true}
	rs.registers['+'] = &Register{Name: '+', Type: RegisterClipboard}
	rs.registers['*'] = &Register{Name: '*', Type: RegisterSelection}
}

// Get returns the content of a register and whether it is linewise. Name 0
// means the unnamed register. Uppercase names read the lowercase register.
func (rs *RegisterStore) Get(name rune) (string, bool, error) {
	name = normalizeName(name)

	if isClipboard(name) {
		rs.mu.RLock()
		clipboard := rs.clipboard
		rs.mu.RUnlock()

		if clipboard != nil {
			content, err := clipboard.Get()
			if err != nil {
				return "", false, fmt.Errorf("read register %c: %w", name, err)
			}
			return content, strings.HasSuffix(content, "\n"), nil
		}
	}

	rs.mu.RLock()
	defer rs.mu.RUnlock()

	reg, ok := rs.registers[unicode.ToLower(name)]
	if !ok {
		return "", false, fmt.Errorf("read register %c: %w", name, ErrUnknownRegister)
	}
	return reg.Content, reg.Linewise, nil
}

// Yank stores yanked text. With no register named it goes to 0 and the
// unnamed register; otherwise to the named register and the unnamed one.
func (rs *RegisterStore) Yank(name rune, content string, linewise bool) error {
	name = normalizeName(name)
	if name == '"' {
		rs.mu.Lock()
		defer rs.mu.Unlock()
		rs.registers['0'].set(content, linewise)
		rs.registers['"'].set(content, linewise)
		return nil
	}
	return rs.store(name, content, linewise)
}

// Delete stores deleted text. With no register named, deletes of a line or
// more shift the 1-9 ring and smaller ones go to -. The unnamed register
// always receives the text unless the black hole register is named.
func (rs *RegisterStore) Delete(name rune, content string, linewise bool) error {
	name = normalizeName(name)
	if name != '"' {
		return rs.store(name, content, linewise)
	}

	rs.mu.Lock()
	defer rs.mu.Unlock()

	if linewise || strings.Contains(content, "\n") {
		for i := len(rs.numbered) - 1; i > 0; i-- {
			rs.numbered[i].Content = rs.numbered[i-1].Content
			rs.numbered[i].Linewise = rs.numbered[i-1].Linewise
		}
		rs.numbered[0].set(content, linewise)
	} else {
		rs.registers['-'].set(content, linewise)
	}
	rs.registers['"'].set(content, linewise)
	return nil
}

// SetLastInserted updates the last inserted text register.
func (rs *RegisterStore) SetLastInserted(content string) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.registers['.'].set(content, false)
}

// store writes to an explicitly named register and mirrors the result into
// the unnamed register.
func (rs *RegisterStore) store(name rune, content string, linewise bool) error {
	if name == '_' {
		return nil
	}

	if isClipboard(name) {
		rs.mu.RLock()
		clipboard := rs.clipboard
		rs.mu.RUnlock()

		if clipboard != nil {
			if err := clipboard.Set(content); err != nil {
				return fmt.Errorf("write register %c: %w", name, err)
			}
			rs.mu.Lock()
			rs.registers['"'].set(content, linewise)
			rs.mu.Unlock()
			return nil
		}
	}

	rs.mu.Lock()
	defer rs.mu.Unlock()

	appendMode := unicode.IsUpper(name)
	reg, ok := rs.registers[unicode.ToLower(name)]
	if !ok {
		return fmt.Errorf("write register %c: %w", name, ErrUnknownRegister)
	}
	if reg.ReadOnly {
		return fmt.Errorf("write register %c: %w", name, ErrReadOnlyRegister)
	}

	if appendMode && reg.Type == RegisterNamed {
		reg.append(content, linewise)
	} else {
		reg.set(content, linewise)
	}
	rs.registers['"'].set(reg.Content, reg.Linewise)
	return nil
}

func (r *Register) set(content string, linewise bool) {
	r.Content = content
	r.Linewise = linewise
}

// append adds content to the register. Mixing a linewise piece into
// characterwise content makes the whole register linewise.
func (r *Register) append(content string, linewise bool) {
	switch {
	case r.Content == "":
		r.set(content, linewise)
	case r.Linewise && !linewise:
		r.Content += content + "\n"
	case !r.Linewise && linewise:
		r.Content += "\n" + content
		r.Linewise = true
	default:
		r.Content += content
	}
}

func normalizeName(name rune) rune {
	if name == 0 {
		return '"'
	}
	return name
}

func isClipboard(name rune) bool {
	return name == '+' || name == '*'
}

// GetRegisterType returns the type of register for a given name.
func GetRegisterType(name rune) RegisterType {
	switch {
	case name == '"' || name == 0:
		return RegisterUnnamed
	case name >= 'a' && name <= 'z', name >= 'A' && name <= 'Z':
		return RegisterNamed
	case name == '0':
		return RegisterLastYank
	case name >= '1' && name <= '9':
		return RegisterNumbered
	case name == '-':
		return RegisterSmallDelete
	case name == '_':
		return RegisterBlackHole
	case name == '.':
		return RegisterLastInserted
	case name == '+':
		return RegisterClipboard
	case name == '*':
		return RegisterSelection
	default:
		return RegisterUnnamed
	}
}

// IsValidRegister returns true if the register name is valid.
func IsValidRegister(name rune) bool {
	switch {
	case name == '"':
		return true
	case name >= 'a' && name <= 'z':
		return true
	case name >= 'A' && name <= 'Z':
		return true
	case name >= '0' && name <= '9':
		return true
	case name == '-', name == '_', name == '.':
		return true
	case name == '+', name == '*':
		return true
	default:
		return false
	}
}
