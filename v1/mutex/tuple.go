package mutex

//go:generate go run ../../cmd/mutexgen -max 16 -pkg mutex -out tuple_gen.go
