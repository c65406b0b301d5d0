package usb

// TransferStatus is the completion state of an asynchronous read.
type TransferStatus uint8

const (
	// TransferPending means the transfer has not completed yet. Polling
	// again later is the only way to make progress; Poll never waits.
	TransferPending TransferStatus = iota
	// TransferCompleted means data arrived. The byte count returned
	// alongside it is valid and the transfer is finished.
	TransferCompleted
	// TransferFailed means the host layer gave up on this transfer. The
	// transfer is finished; no data was produced.
	TransferFailed
)

func (s TransferStatus) String() string {
	switch s {
	case TransferPending:
		return "pending"
	case TransferCompleted:
		return "completed"
	case TransferFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Transfer is one in-flight asynchronous read, exclusively owned by the
// session that submitted it.
//
// Poll must never block. Once Poll has returned Completed or Failed the
// transfer is finished and must not be polled again. Cancel tears the
// transfer down early; it is idempotent and must be called before the
// owner releases the buffer the transfer writes into. Cancelling is the
// only teardown path for a transfer that has not been observed finished.
type Transfer interface {
	Poll() (TransferStatus, int)
	Cancel()
}

// Device is an attached USB device as presented by the host environment.
// The driver never opens or closes devices itself; the host hands them in
// on attach and takes them back on detach.
type Device interface {
	// Desc returns the device descriptor identity fields.
	Desc() DeviceDesc

	// Endpoints lists the endpoint descriptors declared by the given
	// configuration and interface.
	Endpoints(config, iface int) []EndpointDesc

	// SubmitRead issues a non-blocking asynchronous read from the given
	// endpoint into buf. The caller keeps ownership of buf but must not
	// touch it until the transfer is observed finished or cancelled; a
	// completion landing in a released buffer is exactly the hazard
	// Transfer.Cancel exists to rule out. A nil transfer with an error
	// means the host layer is out of transfer resources; the device
	// itself is still attached.
	SubmitRead(ep EndpointDesc, buf []byte) (Transfer, error)
}
