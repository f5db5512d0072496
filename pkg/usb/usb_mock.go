package usb

import "sync"

// Transfer records one control transfer seen by a MockDevice.
type Transfer struct {
	RequestType uint8
	Request     uint8
	Value       uint16
	Index       uint16
	Length      int
}

// MockDevice is a scripted ControlDevice for tests. IN transfers are
// answered from Status; OUT transfers succeed unless Err is set.
type MockDevice struct {
	mu sync.Mutex

	// Status is copied into the data buffer of IN transfers.
	Status []byte
	// Err, when non-nil, fails every transfer.
	Err error

	transfers []Transfer
	closed    bool
}

func (m *MockDevice) Control(requestType, request uint8, value, index uint16, data []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.transfers = append(m.transfers, Transfer{
		RequestType: requestType,
		Request:     request,
		Value:       value,
		Index:       index,
		Length:      len(data),
	})
	if m.Err != nil {
		return 0, m.Err
	}
	if requestType&0x80 != 0 { // device-to-host
		return copy(data, m.Status), nil
	}
	return len(data), nil
}

func (m *MockDevice) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Transfers returns a copy of every transfer performed so far.
func (m *MockDevice) Transfers() []Transfer {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Transfer, len(m.transfers))
	copy(out, m.transfers)
	return out
}

// Closed reports whether Close has been called.
func (m *MockDevice) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}
