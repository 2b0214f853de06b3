package utils

import (
	"fmt"
	"strconv"
)

// FormatRupees renders an integer rupee amount with the Indian grouping
// convention (last three digits, then pairs): 222000 -> "₹ 2,22,000".
func FormatRupees(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s₹ %s", sign, groupIndian(amount))
}

func groupIndian(n int64) string {
	str := strconv.FormatInt(n, 10)
	if len(str) <= 3 {
		return str
	}
	head := str[:len(str)-3]
	out := ""
	for len(head) > 2 {
		out = "," + head[len(head)-2:] + out
		head = head[:len(head)-2]
	}
	return head + out + "," + str[len(str)-3:]
}
