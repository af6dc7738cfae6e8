package mapping

import (
	"fmt"
	"time"
)

// ClientMapping associates a Slide client with a ConnectWise company.
// A persisted mapping is authoritative: once created it is never replaced
// implicitly, only deleted by an operator.
type ClientMapping struct {
	id              uint
	slideClientID   string
	slideClientName string
	connectWiseID   int
	connectWiseName string
	createdAt       time.Time
}

func NewClientMapping(slideClientID, slideClientName string, connectWiseID int, connectWiseName string) (*ClientMapping, error) {
	if slideClientID == "" {
		return nil, fmt.Errorf("slide client ID is required")
	}
	if slideClientName == "" {
		return nil, fmt.Errorf("slide client name is required")
	}
	if connectWiseID == 0 {
		return nil, fmt.Errorf("connectwise company ID is required")
	}
	if connectWiseName == "" {
		return nil, fmt.Errorf("connectwise company name is required")
	}

	return &ClientMapping{
		slideClientID:   slideClientID,
		slideClientName: slideClientName,
		connectWiseID:   connectWiseID,
		connectWiseName: connectWiseName,
		createdAt:       time.Now(),
	}, nil
}

func ReconstructClientMapping(
	id uint,
	slideClientID, slideClientName string,
	connectWiseID int,
	connectWiseName string,
	createdAt time.Time,
) (*ClientMapping, error) {
	if id == 0 {
		return nil, fmt.Errorf("mapping ID cannot be zero")
	}
	if slideClientID == "" {
		return nil, fmt.Errorf("slide client ID is required")
	}

	return &ClientMapping{
		id:              id,
		slideClientID:   slideClientID,
		slideClientName: slideClientName,
		connectWiseID:   connectWiseID,
		connectWiseName: connectWiseName,
		createdAt:       createdAt,
	}, nil
}

func (m *ClientMapping) ID() uint                { return m.id }
func (m *ClientMapping) SlideClientID() string   { return m.slideClientID }
func (m *ClientMapping) SlideClientName() string { return m.slideClientName }
func (m *ClientMapping) ConnectWiseID() int      { return m.connectWiseID }
func (m *ClientMapping) ConnectWiseName() string { return m.connectWiseName }
func (m *ClientMapping) CreatedAt() time.Time    { return m.createdAt }

func (m *ClientMapping) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("mapping ID already set")
	}
	if id == 0 {
		return fmt.Errorf("mapping ID cannot be zero")
	}
	m.id = id
	return nil
}
