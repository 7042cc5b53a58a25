package voicegateway

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/diamondburned/voicelink/discord"
	"github.com/diamondburned/voicelink/voice/rtp"
	"github.com/diamondburned/voicelink/voice/voiceerr"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// HandshakeTimeout bounds the initial handshake, reconnects, and resumes.
const HandshakeTimeout = 5 * time.Second

// Session identifies one logical voice session: it is created once both a
// voice-server-update and a voice-state-update have arrived for this user,
// and persists its SessionID across resumes. Token and Endpoint are
// replaced by a fresh voice-server-update on a full reconnect.
type Session struct {
	Endpoint  string
	GuildID   discord.Snowflake
	UserID    discord.Snowflake
	SessionID string
	Token     string
}

// Event is a surfaced, already-classified voice gateway event: exactly one
// field is non-nil.
type Event struct {
	Speaking         *SpeakingData
	ClientConnect    *ClientConnectEvent
	ClientDisconnect *ClientDisconnectEvent
}

// HandshakeResult carries everything Connect needs to hand back to the
// caller to build an RTP socket: the negotiated SSRC, local/remote UDP
// endpoints, and the Encryptor inputs (mode + secret key).
type HandshakeResult struct {
	SSRC      uint32
	UDPConn   *net.UDPConn
	Mode      rtp.Mode
	SecretKey [32]byte
}

// Connection is the voice gateway websocket state machine: handshake,
// heartbeat, resume, and event dispatch. It does not own the RTP socket —
// per the resume contract, the UDP transport and its sequence/timestamp
// state outlive any number of websocket resumes.
type Connection struct {
	mu          sync.Mutex
	session     Session
	ws          *websocket.Conn
	heartbeater *Heartbeater
	sendLimiter *rate.Limiter

	incoming chan wsMessage

	// ErrorLog receives protocol/transport errors that are logged and
	// dropped rather than surfaced, matching the teacher's ErrorLog
	// callback convention.
	ErrorLog func(error)

	// Dialer is the websocket.Dialer used by dial()/resume(), matching the
	// teacher's own NewConnWithDialer convention (utils/wsutil.Conn). Tests
	// substitute one pointed at an in-process TLS listener; production
	// code leaves it nil and gets websocket.DefaultDialer.
	Dialer *websocket.Dialer
}

type wsMessage struct {
	data []byte
	err  error
}

// NewConnection constructs an unconnected Connection for the given session.
func NewConnection(session Session) *Connection {
	return &Connection{
		session:     session,
		sendLimiter: rate.NewLimiter(rate.Every(500*time.Millisecond), 10),
		ErrorLog:    func(error) {},
	}
}

// Session returns the current session tuple.
func (c *Connection) Session() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

func (c *Connection) logError(err error) {
	if c.ErrorLog != nil {
		c.ErrorLog(err)
	}
}

// dial opens the websocket to the session's endpoint and starts the reader
// goroutine.
func (c *Connection) dial() error {
	c.mu.Lock()
	endpoint := c.session.Endpoint
	c.mu.Unlock()

	url := "wss://" + endpoint + "/?v=4"

	dialer := c.Dialer
	if dialer == nil {
		dialer = websocket.DefaultDialer
	}

	ws, _, err := dialer.Dial(url, http.Header{})
	if err != nil {
		return voiceerr.WrapWS(voiceerr.NewWSIOError(err))
	}

	c.mu.Lock()
	c.ws = ws
	c.incoming = make(chan wsMessage, 4)
	c.mu.Unlock()

	go c.readLoop(ws, c.incoming)
	return nil
}

func (c *Connection) readLoop(ws *websocket.Conn, out chan<- wsMessage) {
	for {
		_, data, err := ws.ReadMessage()
		if err != nil {
			out <- wsMessage{err: classifyReadError(err)}
			return
		}
		out <- wsMessage{data: data}
	}
}

func classifyReadError(err error) error {
	if closeErr, ok := err.(*websocket.CloseError); ok {
		code, known := voiceerr.CodeFromCloseCode(closeErr.Code)
		if !known {
			return voiceerr.NewTransportError(err, false)
		}
		return voiceerr.NewAPIError(&voiceerr.ApiError{Code: code, Message: closeErr.Text})
	}
	// Any other read failure (EOF, connection reset, i/o timeout without a
	// close frame) is treated as a transport reset without a closing
	// handshake, which is resumable.
	return voiceerr.NewTransportError(err, true)
}

// Connect performs the full handshake: Identify, await Hello+Ready, UDP
// bind + IP discovery, mode selection, SelectProtocol, await
// SessionDescription. It returns the negotiated UDP connection and
// encryption parameters needed to build an rtp.Socket.
func Connect(session Session, errorLog func(error)) (*Connection, *HandshakeResult, error) {
	return ConnectWithDialer(session, errorLog, nil)
}

// ConnectWithDialer is Connect with an injectable websocket.Dialer, used by
// tests to point the handshake at an in-process TLS listener instead of a
// real voice endpoint.
func ConnectWithDialer(session Session, errorLog func(error), dialer *websocket.Dialer) (*Connection, *HandshakeResult, error) {
	c := NewConnection(session)
	c.Dialer = dialer
	if errorLog != nil {
		c.ErrorLog = errorLog
	}

	deadline := time.Now().Add(HandshakeTimeout)

	if err := c.dial(); err != nil {
		return nil, nil, err
	}

	if err := c.sendPayload(IdentifyOP, IdentifyData{
		GuildID:   session.GuildID,
		UserID:    session.UserID,
		SessionID: session.SessionID,
		Token:     session.Token,
	}); err != nil {
		return nil, nil, err
	}

	var hello *HelloEvent
	var ready *ReadyEvent

	for hello == nil || ready == nil {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil, nil, voiceerr.Timeout()
		}

		v, err := c.recvRaw(remaining)
		if err != nil {
			return nil, nil, err
		}

		switch val := v.(type) {
		case HelloEvent:
			h := val
			hello = &h
		case ReadyEvent:
			r := val
			ready = &r
		default:
			WSDebug("dropping unexpected payload during handshake", val)
		}
	}

	c.heartbeater = NewHeartbeater(hello.HeartbeatInterval.Duration())

	udpConn, err := dialVoiceUDP(ready.IP, ready.Port)
	if err != nil {
		return nil, nil, voiceerr.WrapRTP(voiceerr.NewRTPIOError(err))
	}

	extAddr, extPort, err := rtp.Discover(udpConn, ready.SSRC, time.Until(deadline))
	if err != nil {
		udpConn.Close()
		return nil, nil, voiceerr.WrapWS(voiceerr.NewIPDiscoveryError(err))
	}

	selectedMode, ok := rtp.SelectMode(ready.Modes)
	if !ok {
		udpConn.Close()
		return nil, nil, voiceerr.WrapWS(voiceerr.NewWSProtocolError(
			voiceerr.NewUnsupportedEncryptionModeError("(none of the offered modes are supported)")))
	}

	if err := c.sendPayload(SelectProtocolOP, SelectProtocolData{
		Protocol: "udp",
		Data: SelectProtocolInnerData{
			Address: extAddr,
			Port:    extPort,
			Mode:    selectedMode.WireName(),
		},
	}); err != nil {
		udpConn.Close()
		return nil, nil, err
	}

	var desc *SessionDescriptionEvent
	for desc == nil {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			udpConn.Close()
			return nil, nil, voiceerr.Timeout()
		}

		v, err := c.recvRaw(remaining)
		if err != nil {
			udpConn.Close()
			return nil, nil, err
		}

		if d, ok := v.(SessionDescriptionEvent); ok {
			desc = &d
		} else {
			WSDebug("dropping unexpected payload awaiting session description", v)
		}
	}

	return c, &HandshakeResult{
		SSRC:      ready.SSRC,
		UDPConn:   udpConn,
		Mode:      selectedMode,
		SecretKey: desc.SecretKey,
	}, nil
}

func dialVoiceUDP(ip string, port uint16) (*net.UDPConn, error) {
	raddr := &net.UDPAddr{IP: net.ParseIP(ip), Port: int(port)}
	return net.DialUDP("udp", nil, raddr)
}

// recvRaw reads and decodes exactly one payload, or returns an error after
// timeout elapses. Protocol errors are logged and dropped by being retried
// internally; only the final deadline expiry or a transport-layer error is
// returned. This helper is used only during the handshake, where the
// two-phase event loop (Recv) isn't yet appropriate since there's no
// heartbeater to race against.
func (c *Connection) recvRaw(timeout time.Duration) (interface{}, error) {
	deadline := time.Now().Add(timeout)
	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil, voiceerr.Timeout()
		}

		select {
		case msg := <-c.incoming:
			if msg.err != nil {
				return nil, voiceerr.WrapWS(msg.err.(*voiceerr.WSError))
			}

			op, err := ScanOpcode(msg.data)
			if err != nil {
				c.logError(err)
				continue
			}
			v, err := Decode(op, msg.data)
			if err != nil {
				c.logError(err)
				continue
			}
			return v, nil
		case <-time.After(remaining):
			return nil, voiceerr.Timeout()
		}
	}
}

// Recv performs one cooperative step of the connection's event loop: a
// select between the next websocket message and the heartbeat timer. It
// returns exactly one surfaced Event, or nil with no error if it only
// serviced a heartbeat tick or dropped a protocol error / uninteresting
// payload internally — callers should call Recv again in that case.
//
// Resumable transport/API errors are absorbed transparently via an inline
// resume() and do not return an error; only a failed resume or a fatal
// error is surfaced.
func (c *Connection) Recv() (*Event, error) {
	c.mu.Lock()
	incoming := c.incoming
	hb := c.heartbeater
	c.mu.Unlock()

	var heartbeatTimer <-chan time.Time
	if hb != nil {
		heartbeatTimer = time.After(hb.Next())
	}

	select {
	case msg := <-incoming:
		if msg.err != nil {
			wsErr, ok := msg.err.(*voiceerr.WSError)
			if !ok {
				return nil, voiceerr.WrapWS(voiceerr.NewWSIOError(msg.err))
			}
			if wsErr.Disconnected() {
				return nil, voiceerr.WrapWS(wsErr)
			}
			if wsErr.CanResume() {
				if err := c.resume(); err != nil {
					return nil, err
				}
				return nil, nil
			}
			return nil, voiceerr.WrapWS(wsErr)
		}

		op, err := ScanOpcode(msg.data)
		if err != nil {
			c.logError(err)
			return nil, nil
		}
		v, err := Decode(op, msg.data)
		if err != nil {
			c.logError(err)
			return nil, nil
		}

		switch val := v.(type) {
		case HeartbeatData:
			if hb != nil && !hb.CheckAck(uint64(val)) {
				c.logError(errors.Errorf("voice gateway: heartbeat ack nonce mismatch: got %d", uint64(val)))
			}
			return nil, nil
		case SpeakingData:
			d := val
			return &Event{Speaking: &d}, nil
		case ClientConnectEvent:
			d := val
			return &Event{ClientConnect: &d}, nil
		case ClientDisconnectEvent:
			d := val
			return &Event{ClientDisconnect: &d}, nil
		default:
			WSDebug("dropping event during steady state", val)
			return nil, nil
		}

	case <-heartbeatTimer:
		nonce := hb.Beat()
		if err := c.sendPayload(HeartbeatOP, HeartbeatData(nonce)); err != nil {
			return nil, err
		}
		return nil, nil
	}
}

// Send serialises and writes command under opcode op. On a resumable
// error it transparently resumes and retries exactly once.
func (c *Connection) Send(op OPCode, command interface{}) error {
	if err := c.sendPayload(op, command); err != nil {
		wsErr, ok := errCause(err)
		if ok && wsErr.CanResume() {
			if rerr := c.resume(); rerr != nil {
				return rerr
			}
			return c.sendPayload(op, command)
		}
		return err
	}
	return nil
}

func errCause(err error) (*voiceerr.WSError, bool) {
	if topErr, ok := err.(*voiceerr.Error); ok && topErr.WS != nil {
		return topErr.WS, true
	}
	if wsErr, ok := err.(*voiceerr.WSError); ok {
		return wsErr, true
	}
	return nil, false
}

func (c *Connection) sendPayload(op OPCode, v interface{}) error {
	b, err := Encode(op, v)
	if err != nil {
		c.logError(err)
		return nil
	}

	if err := c.sendLimiter.Wait(context.Background()); err != nil {
		return voiceerr.WrapWS(voiceerr.NewWSIOError(err))
	}

	c.mu.Lock()
	ws := c.ws
	c.mu.Unlock()

	if err := ws.WriteMessage(websocket.TextMessage, b); err != nil {
		return voiceerr.WrapWS(classifyReadError(err).(*voiceerr.WSError))
	}
	return nil
}

// resume reopens the websocket to the same endpoint, resends Resume with
// the saved session tuple, and waits for Resumed — logging and dropping
// anything else. It deliberately does not touch the RTP socket: the same
// UDP connection and sequence/timestamp counters are reused by the caller
// across a resume.
func (c *Connection) resume() error {
	if err := c.dial(); err != nil {
		return err
	}

	session := c.Session()
	if err := c.sendPayload(ResumeOP, ResumeData{
		GuildID:   session.GuildID,
		SessionID: session.SessionID,
		Token:     session.Token,
	}); err != nil {
		return err
	}

	deadline := time.Now().Add(HandshakeTimeout)
	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return voiceerr.Timeout()
		}
		v, err := c.recvRaw(remaining)
		if err != nil {
			return err
		}
		if _, ok := v.(ResumedEvent); ok {
			return nil
		}
		WSDebug("dropping event while awaiting resumed", v)
	}
}

// Disconnect sends a normal-closure close frame and tears down the socket.
func (c *Connection) Disconnect() error {
	c.mu.Lock()
	ws := c.ws
	c.mu.Unlock()
	if ws == nil {
		return nil
	}

	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "Disconnected from gateway")
	_ = ws.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
	return ws.Close()
}

// Rebind replaces the session tuple used for subsequent resumes/reconnects
// (e.g. after a fresh voice-server-update supplies a new token/endpoint).
func (c *Connection) Rebind(session Session) {
	c.mu.Lock()
	c.session = session
	c.mu.Unlock()
}

