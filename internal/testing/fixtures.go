package testing

// EndToEndDocument is a web tier in the Common partition: one node behind
// one pool and one virtual server.
const EndToEndDocument = `metadata:
  name: web
  partition: Common
  lac: L1
spec:
  nodes:
    - name: n1
      address: 10.0.0.1
  pools:
    - name: p1
      monitor: gateway_icmp
      members: [n1]
  virtual_servers:
    - name: vs1
      destination: 10.0.0.100
      port: 443
      pool: p1
`

// WarningDocument is the YAML form of WarningConfig.
const WarningDocument = `metadata:
  name: api
  partition: Tenant_A
spec:
  monitors:
    - name: udp_mon
      type: udp
  pools:
    - name: p1
      members: [ghost]
`
