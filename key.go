package aldo

// key is one logical key event. Values below 256 are the byte as
// typed; named keys produced from escape sequences start at 1000.
type key int

const (
	keyNone key = -1 // read timed out with nothing pressed

	ctrlA        key = 1
	ctrlC        key = 3
	ctrlD        key = 4
	ctrlE        key = 5
	ctrlF        key = 6
	ctrlH        key = 8
	keyTab       key = 9
	ctrlL        key = 12
	keyEnter     key = 13
	ctrlQ        key = 17
	ctrlS        key = 19
	keyEsc       key = 27
	keyBackspace key = 127

	arrowLeft  key = 1000
	arrowRight key = 1001
	arrowUp    key = 1002
	arrowDown  key = 1003
	delKey     key = 1004
	homeKey    key = 1005
	endKey     key = 1006
	pageUp     key = 1007
	pageDown   key = 1008
)

// byteSource is a blocking single-byte reader with a bounded timeout.
// ok is false when the timeout expired before a byte arrived.
type byteSource interface {
	ReadByte() (b byte, ok bool, err error)
}

// keyDecoder turns a terminal byte stream into logical keys.
type keyDecoder struct {
	src byteSource
}

// ReadKey returns the next logical key. keyNone means the read timed
// out; the caller should repaint and call again. An ESC byte starts an
// escape sequence: up to two further bytes are read in the same
// episode (a third for CSI sequences of the form `ESC [ <digit> ~`).
// Any shortfall or unrecognized tail decodes as plain keyEsc; bytes
// already consumed are dropped, nothing is buffered between calls.
func (d *keyDecoder) ReadKey() (key, error) {
	c, ok, err := d.src.ReadByte()
	if err != nil {
		return keyNone, err
	}
	if !ok {
		return keyNone, nil
	}
	if key(c) != keyEsc {
		return key(c), nil
	}

	var seq [3]byte
	seq[0], ok, err = d.src.ReadByte()
	if err != nil || !ok {
		return keyEsc, err
	}
	seq[1], ok, err = d.src.ReadByte()
	if err != nil || !ok {
		return keyEsc, err
	}

	switch {
	case seq[0] == '[' && seq[1] >= '0' && seq[1] <= '9':
		seq[2], ok, err = d.src.ReadByte()
		if err != nil || !ok {
			return keyEsc, err
		}
		if seq[2] == '~' {
			switch seq[1] {
			case '1', '7':
				return homeKey, nil
			case '3':
				return delKey, nil
			case '4', '8':
				return endKey, nil
			case '5':
				return pageUp, nil
			case '6':
				return pageDown, nil
			}
		}
	case seq[0] == '[':
		switch seq[1] {
		case 'A':
			return arrowUp, nil
		case 'B':
			return arrowDown, nil
		case 'C':
			return arrowRight, nil
		case 'D':
			return arrowLeft, nil
		case 'H':
			return homeKey, nil
		case 'F':
			return endKey, nil
		}
	case seq[0] == 'O':
		switch seq[1] {
		case 'H':
			return homeKey, nil
		case 'F':
			return endKey, nil
		}
	}
	return keyEsc, nil
}
