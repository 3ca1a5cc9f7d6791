package testdata

/*errenum enum App { bare Parse(string), bare Code(int, int) } */

/*errenum from Ap => Parse(string) // want `unknown target: enum Ap is not declared; did you mean App\?` */

/*errenum from App => Prase(string) // want `unknown target: variant Prase is not declared; did you mean Parse\?` */

/*errenum from App => Code(int) // want `conversion mismatch: variant Code must have exactly one payload type to convert from int, got 2` */

/*errenum from App => Parse(int) // want `conversion mismatch: cannot convert from int into variant Parse with payload string` */
