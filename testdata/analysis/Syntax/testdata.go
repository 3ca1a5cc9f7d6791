package testdata

/*errenum enum Bad { auto Foo(string) bare Bar(int) } // want `syntax error at "bare": expected ","` */
