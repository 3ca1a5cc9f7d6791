package stale

/*errenum enum Fresh { auto Foo(int) } */
