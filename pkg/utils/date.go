package utils

import (
	"fmt"
	"time"
)

// ConvertGatewayTimeToUnixTimestamp parses the "2006-01-02 15:04:05" local
// timestamps the payment gateway puts in charge responses and notifications.
func ConvertGatewayTimeToUnixTimestamp(gatewayTime string, tz string) (int64, error) {
	location, err := time.LoadLocation(tz)
	if err != nil {
		return 0, fmt.Errorf("error loading gateway time zone: %v", err)
	}

	t, err := time.ParseInLocation("2006-01-02 15:04:05", gatewayTime, location)
	if err != nil {
		return 0, fmt.Errorf("error parsing time: %v", err)
	}

	return t.Unix(), nil
}
