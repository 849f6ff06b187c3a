package auth

import (
	"errors"
	"fmt"
)

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded for user %s: %s (current: %d, max: %d)", e.UserID, e.Limit, e.Current, e.Max)
}

func IsRateLimitError(err error) bool {
	var rl *RateLimitError
	return errors.As(err, &rl)
}

// Acquire records a new connection or returns a RateLimitError.
// Every successful Acquire must be paired with Release.
func (ct *ConnectionTracker) Acquire(userID, deviceID string) error {
	ct.mu.Lock()
	defer ct.mu.Unlock()

	if err := ct.checkRateLocked(userID); err != nil {
		return err
	}
	if cur := ct.userConnections[userID]; cur >= ct.config.MaxConnectionsPerUser {
		return &RateLimitError{UserID: userID, Limit: LimitPerUser, Current: cur, Max: ct.config.MaxConnectionsPerUser}
	}
	devices := ct.userDeviceConnections[userID]
	if devices == nil {
		devices = make(map[string]int)
		ct.userDeviceConnections[userID] = devices
	}
	if cur := devices[deviceID]; cur >= ct.config.MaxConnectionsPerUserPerDevice {
		return &RateLimitError{UserID: userID, Limit: LimitPerDevice, Current: cur, Max: ct.config.MaxConnectionsPerUserPerDevice}
	}

	ct.userConnections[userID]++
	devices[deviceID]++
	ct.connectionTimestamps[userID] = append(ct.connectionTimestamps[userID], ct.now())
	return nil
}

func (ct *ConnectionTracker) Release(userID, deviceID string) {
	ct.mu.Lock()
	defer ct.mu.Unlock()

	if ct.userConnections[userID] > 0 {
		ct.userConnections[userID]--
		if ct.userConnections[userID] == 0 {
			delete(ct.userConnections, userID)
		}
	}
	if devices := ct.userDeviceConnections[userID]; devices != nil {
		if devices[deviceID] > 0 {
			devices[deviceID]--
			if devices[deviceID] == 0 {
				delete(devices, deviceID)
			}
		}
		if len(devices) == 0 {
			delete(ct.userDeviceConnections, userID)
		}
	}
}

func (ct *ConnectionTracker) checkRateLocked(userID string) error {
	windowStart := ct.now().Add(-ct.config.RateLimitWindow)

	kept := ct.connectionTimestamps[userID][:0]
	for _, ts := range ct.connectionTimestamps[userID] {
		if ts.After(windowStart) {
			kept = append(kept, ts)
		}
	}
	if len(kept) == 0 {
		delete(ct.connectionTimestamps, userID)
	} else {
		ct.connectionTimestamps[userID] = kept
	}

	if len(kept) >= ct.config.ConnectionRateLimit {
		return &RateLimitError{UserID: userID, Limit: LimitRate, Current: len(kept), Max: ct.config.ConnectionRateLimit}
	}
	return nil
}

func (ct *ConnectionTracker) Stats() ConnectionTrackerStats {
	ct.mu.Lock()
	defer ct.mu.Unlock()

	total := 0
	for _, n := range ct.userConnections {
		total += n
	}
	return ConnectionTrackerStats{TotalUsers: len(ct.userConnections), TotalConnections: total}
}
