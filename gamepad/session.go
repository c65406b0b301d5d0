package gamepad

import (
	"log/slog"

	"github.com/bootpad/bootpad/usb"
)

// session is the live state of one attached, claimed controller.
//
// A session exclusively owns its in-flight transfer: the transfer is
// created here, polled here, and cancelled here. close is the only
// teardown path and always cancels before the session is dropped, so a
// completed transfer can never land in a released buffer.
type session struct {
	dev      usb.Device
	desc     usb.DeviceDesc
	name     string
	endpoint usb.EndpointDesc

	transfer usb.Transfer // nil when nothing is in flight
	stalled  bool         // read resubmission failed; no further input

	last  Report
	buf   []byte
	queue *KeyQueue
}

func newSession(dev usb.Device, name string, ep usb.EndpointDesc, queueSize int) *session {
	length := ReportSize
	if int(ep.MaxPacketSize) > length {
		length = int(ep.MaxPacketSize)
	}
	return &session{
		dev:      dev,
		desc:     dev.Desc(),
		name:     name,
		endpoint: ep,
		last:     Baseline(),
		buf:      make([]byte, length),
		queue:    NewKeyQueue(queueSize),
	}
}

// submitRead issues the next asynchronous read. A submission failure
// stalls the session: it stops producing input but keeps its slot until
// the host detaches it, since the host may still reference the device.
func (s *session) submitRead(logger *slog.Logger) {
	if s.stalled || s.transfer != nil {
		return
	}
	t, err := s.dev.SubmitRead(s.endpoint, s.buf)
	if err != nil || t == nil {
		s.stalled = true
		logger.Warn("controller read submission failed, input stalled",
			"controller", s.name, "error", err)
		return
	}
	s.transfer = t
}

// poll runs one cycle of the Polling state: check the in-flight
// transfer, feed a completed report through the decoder into the queue,
// and issue the next read. It never blocks.
func (s *session) poll(dec Decoder, logger *slog.Logger) {
	if s.transfer != nil {
		status, n := s.transfer.Poll()
		switch status {
		case usb.TransferPending:
			return
		case usb.TransferCompleted:
			s.transfer = nil
			if report, ok := ParseReport(s.buf[:n]); ok {
				for _, k := range dec.Detect(s.last, report) {
					s.queue.Push(k)
				}
				s.last = report
			}
			// Short reads carry no state; keep diffing against the
			// last full report.
		case usb.TransferFailed:
			// No data this cycle. The session stays attached; only an
			// explicit host detach removes it.
			s.transfer = nil
		}
	}
	s.submitRead(logger)
}

// close cancels any in-flight transfer and releases the session's claim
// on it. Safe to call more than once.
func (s *session) close() {
	if s.transfer != nil {
		s.transfer.Cancel()
		s.transfer = nil
	}
}
