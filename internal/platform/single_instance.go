package platform

import (
	"bufio"
	"errors"
	"fmt"
	"hash/fnv"
	"net"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrAlreadyRunning indicates another clock panel already holds the lock.
var ErrAlreadyRunning = errors.New("instance already running")

const (
	activateRequest = "activate"
	ioTimeout       = 2 * time.Second
)

// InstanceGuard holds the single-instance lock and answers later launches.
type InstanceGuard struct {
	listener   net.Listener
	address    string
	onActivate func()
}

// AcquireSingleInstance binds a localhost port derived from appName.
// When the port is taken, the holder is asked to bring its panel to the front
// and the returned error wraps ErrAlreadyRunning with the holder's pid.
// onActivate runs for every such request while the guard is held.
func AcquireSingleInstance(appName string, onActivate func()) (*InstanceGuard, error) {
	address := fmt.Sprintf("127.0.0.1:%d", portFromName(appName))
	listener, err := net.Listen("tcp", address)
	if err != nil {
		holder, askErr := activateHolder(address)
		if askErr != nil {
			log.Debug().Err(askErr).Str("address", address).Msg("instance lock held by unknown process")
			return nil, fmt.Errorf("%w: %s busy", ErrAlreadyRunning, address)
		}
		return nil, fmt.Errorf("%w: pid %s", ErrAlreadyRunning, holder)
	}

	guard := &InstanceGuard{listener: listener, address: address, onActivate: onActivate}
	go guard.serve(listener)
	return guard, nil
}

// Release frees the lock.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.listener == nil {
		return nil
	}
	err := guard.listener.Close()
	guard.listener = nil
	return err
}

// Address returns the bound address.
func (guard *InstanceGuard) Address() string {
	if guard == nil {
		return ""
	}
	return guard.address
}

func (guard *InstanceGuard) serve(listener net.Listener) {
	for {
		conn, err := listener.Accept()
		if err != nil {
			if !errors.Is(err, net.ErrClosed) {
				log.Warn().Err(err).Msg("instance lock: accept")
			}
			return
		}
		guard.answer(conn)
	}
}

func (guard *InstanceGuard) answer(conn net.Conn) {
	defer conn.Close()
	_ = conn.SetDeadline(time.Now().Add(ioTimeout))

	request, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil {
		log.Debug().Err(err).Msg("instance lock: read request")
		return
	}
	if strings.TrimSpace(request) == activateRequest {
		log.Info().Msg("second launch, raising clock panel")
		if guard.onActivate != nil {
			guard.onActivate()
		}
	}
	if _, err := fmt.Fprintf(conn, "%d\n", os.Getpid()); err != nil {
		log.Debug().Err(err).Msg("instance lock: reply")
	}
}

// activateHolder asks the process behind address to come forward and returns its pid.
func activateHolder(address string) (string, error) {
	conn, err := net.DialTimeout("tcp", address, ioTimeout)
	if err != nil {
		return "", err
	}
	defer conn.Close()
	_ = conn.SetDeadline(time.Now().Add(ioTimeout))

	if _, err := fmt.Fprintf(conn, "%s\n", activateRequest); err != nil {
		return "", err
	}
	reply, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(reply), nil
}

func portFromName(appName string) int {
	const (
		minPort = 20000
		maxPort = 39999
	)
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appName))
	rangeSize := maxPort - minPort + 1
	return minPort + int(hash.Sum32()%uint32(rangeSize))
}
