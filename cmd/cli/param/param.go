package param

type Serve struct {
	Listen string `arg:"-l,--listen" help:"address to listen on (default LISTEN or 0.0.0.0:$AWS_LWA_PORT)"`
}

type Put struct {
	Name string `arg:"-n,--name,required" help:"name of the user"`
	Age  int    `arg:"-a,--age,required" help:"age of the user"`
	Json bool   `arg:"-j,--json" help:"print the stored user as json"`
}
