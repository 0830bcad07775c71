package hellosphere

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadToolkitArg is returned when a toolkit flag is missing its value or has a malformed one.
var ErrBadToolkitArg = errors.New("bad toolkit argument")

// ToolkitOptions are the settings a Toolkit reads from the command line during Init().
type ToolkitOptions struct {
	Display string // X display to connect to (-display)

	// Geometry (-geometry WxH+X+Y); each part is only applied if its Has flag is set. X and Y are magnitudes; when
	// XNegative or YNegative is set they're measured from the right or bottom edge (see Position()).
	Width, Height        int
	HasWidth, HasHeight  bool
	X, Y                 int
	HasX, HasY           bool
	XNegative, YNegative bool

	Iconic  bool // Start the window minimized (-iconic)
	GLDebug bool // Log every graphics call (-gldebug)
	Direct  bool // Ask for a direct rendering context (-direct); -indirect clears it
	Sync    bool // Synchronous window system calls (-sync)
}

// ParseToolkitArgs removes the toolkit's flags from args, returning their settings and the remaining arguments in
// their original order. Flags use a single dash, as the X toolkits do. The first argument is the program name and is
// always kept.
func ParseToolkitArgs(args []string) (ToolkitOptions, []string, error) {

	opts := ToolkitOptions{Direct: true}

	if len(args) == 0 {
		return opts, []string{}, nil
	}

	rest := []string{args[0]}

	for i := 1; i < len(args); i++ {

		arg := args[i]

		switch arg {

		case "-display", "-geometry":

			if i+1 >= len(args) {
				return opts, nil, fmt.Errorf("%s: missing value: %w", arg, ErrBadToolkitArg)
			}
			i++

			if arg == "-display" {
				opts.Display = args[i]
				continue
			}

			if err := opts.parseGeometry(args[i]); err != nil {
				return opts, nil, err
			}

		case "-iconic":
			opts.Iconic = true
		case "-gldebug":
			opts.GLDebug = true
		case "-direct":
			opts.Direct = true
		case "-indirect":
			opts.Direct = false
		case "-sync":
			opts.Sync = true

		default:
			rest = append(rest, arg)

		}

	}

	return opts, rest, nil

}

// parseGeometry parses an X geometry string of the form [=][<width>][x<height>][{+-}<xoffset>[{+-}<yoffset>]], the way
// XParseGeometry does: every part is optional, and a "-" offset is measured from the right or bottom edge of the
// screen instead of the left or top (so "-0-0" is the bottom-right corner).
func (opts *ToolkitOptions) parseGeometry(geometry string) error {

	bad := fmt.Errorf("-geometry %q: %w", geometry, ErrBadToolkitArg)

	g := strings.TrimPrefix(geometry, "=")

	if g == "" {
		return bad
	}

	if digits, rest := leadingDigits(g); digits != "" {
		w, err := strconv.Atoi(digits)
		if err != nil || w <= 0 {
			return bad
		}
		opts.Width, opts.HasWidth = w, true
		g = rest
	}

	if g != "" && (g[0] == 'x' || g[0] == 'X') {
		digits, rest := leadingDigits(g[1:])
		h, err := strconv.Atoi(digits)
		if err != nil || h <= 0 {
			return bad
		}
		opts.Height, opts.HasHeight = h, true
		g = rest
	}

	if g == "" {
		return nil
	}

	x, negative, rest, ok := parseOffset(g)
	if !ok {
		return bad
	}
	opts.X, opts.XNegative, opts.HasX = x, negative, true

	if rest == "" {
		return nil
	}

	y, negative, rest, ok := parseOffset(rest)
	if !ok || rest != "" {
		return bad
	}
	opts.Y, opts.YNegative, opts.HasY = y, negative, true

	return nil

}

// Position resolves the -geometry offsets to the top-left corner of a window of the given size on a screen of the
// given size. Offsets that weren't given are 0.
func (opts ToolkitOptions) Position(screenWidth, screenHeight, width, height int) (int, int) {

	x, y := opts.X, opts.Y

	if opts.XNegative {
		x = screenWidth - width - opts.X
	}

	if opts.YNegative {
		y = screenHeight - height - opts.Y
	}

	return x, y

}

// HasPosition returns true if -geometry gave either offset.
func (opts ToolkitOptions) HasPosition() bool {
	return opts.HasX || opts.HasY
}

// EdgeRelative returns true if either offset is measured from the right or bottom edge of the screen.
func (opts ToolkitOptions) EdgeRelative() bool {
	return opts.XNegative || opts.YNegative
}

func leadingDigits(s string) (string, string) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i], s[i:]
}

// parseOffset parses a signed offset from the start of s, returning its magnitude, whether it was negative and what
// follows it.
func parseOffset(s string) (int, bool, string, bool) {

	if s == "" || (s[0] != '+' && s[0] != '-') {
		return 0, false, s, false
	}

	digits, rest := leadingDigits(s[1:])

	value, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false, s, false
	}

	return value, s[0] == '-', rest, true

}
