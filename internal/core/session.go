package core

import "github.com/rahul22112003/Collaborative-Coding/internal/domain"

// memberSession implements MemberSession by pairing meta + transport.
type memberSession struct {
	meta *domain.Client
	conn SignalConnection
}

func NewMemberSession(meta *domain.Client, conn SignalConnection) MemberSession {
	return &memberSession{meta: meta, conn: conn}
}

func (m *memberSession) Meta() *domain.Client     { return m.meta }
func (m *memberSession) Signal() SignalConnection { return m.conn }
