package lock_test

import (
	"fmt"

	"github.com/mirkobrombin/go-mutex/v1/lock"
	"github.com/mirkobrombin/go-mutex/v1/mutex"
)

func ExampleGuard() {
	locker := lock.NewInMemory(nil)
	defer locker.Close()

	stock := 5
	orders := mutex.NewCell([]string{})
	item := lock.NewGuard(locker, "stock:widget", &stock)

	mutex.Lock2(item, orders, func(s *int, o *[]string) struct{} {
		*s--
		*o = append(*o, "widget")
		return struct{}{}
	})
	fmt.Println(stock, orders.Into())
	// Output: 4 [widget]
}
